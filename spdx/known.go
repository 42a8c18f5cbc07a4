package spdx

import (
	"bufio"
	"bytes"
	_ "embed"
	"strings"
)

//go:embed resources/licenses.txt
var licenseList []byte

//go:embed resources/exceptions.txt
var exceptionList []byte

var (
	knownLicenses   = loadList(licenseList)
	knownExceptions = loadList(exceptionList)
)

func loadList(data []byte) map[string]bool {
	ret := map[string]bool{}
	scanner := bufio.NewScanner(bytes.NewReader(data))
	for scanner.Scan() {
		if line := strings.TrimSpace(scanner.Text()); line != "" {
			ret[strings.ToLower(line)] = true
		}
	}
	return ret
}

// IsLicenseRef returns true for LicenseRef- and DocumentRef- references.
func IsLicenseRef(id string) bool {
	lower := strings.ToLower(id)
	return strings.HasPrefix(lower, "licenseref-") || strings.HasPrefix(lower, "documentref-")
}

// IsKnownLicense returns true when id (ignoring a "+" suffix) is a listed SPDX license id.
func IsKnownLicense(id string) bool {
	return knownLicenses[strings.ToLower(strings.TrimSuffix(id, "+"))]
}

// IsKnownException returns true when id is a listed SPDX exception id.
func IsKnownException(id string) bool {
	return knownExceptions[strings.ToLower(id)]
}
