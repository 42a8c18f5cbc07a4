// Package classification partitions a license classification into the
// allowed and review license sets used by the policy rules.
//
// A classification document assigns license ids to named categories:
//
//	categories:
//	  - name: allow
//	  - name: review
//	categorizations:
//	  - id: MIT
//	    categories: [allow]
//
// The allowed and review sets must be disjoint; New fails with a
// *DuplicateError naming every overlapping id otherwise.
package classification
