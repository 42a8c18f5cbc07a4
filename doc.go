// Package licensor evaluates the license information of dependency packages
// against a license classification policy.
//
// A classification document partitions license ids into "allow" and
// "review" categories. Every license that is in neither category is reported
// by the UNHANDLED_LICENSE rule, every declared license string that cannot
// be mapped to an SPDX expression by UNMAPPED_DECLARED_LICENSE.
//
//	srv, _ := licensor.New(licensor.WithConfig(cfg))
//	_, err := srv.LoadClassifications(ctx, "policy/license-classifications.yml")
//	packages, _ := srv.LoadPackages(ctx, "analyzer-result.yml")
//	aReport, _ := srv.Evaluate(ctx, packages)
//	if aReport.HasErrors() { ... }
package licensor
