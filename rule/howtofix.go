package rule

// HowToFixDefault is the remediation hint attached to license violations.
const HowToFixDefault = "* Check if this license violation is intended\n" +
	"* Adjust the license classifications or the policy in the licensor config"
