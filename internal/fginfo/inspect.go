package fginfo

import (
	"cmp"
	"fmt"
	"slices"
)

// IssueKind classifies a consistency finding reported by Inspect.
type IssueKind string

const (
	// IssueDanglingRead is a read id absent from the resource mapping.
	IssueDanglingRead IssueKind = "dangling_read"
	// IssueDanglingWrite is a write id absent from the resource mapping.
	IssueDanglingWrite IssueKind = "dangling_write"
	// IssueKeyMismatch is a mapping key that differs from its Resource's ID.
	IssueKeyMismatch IssueKind = "key_mismatch"
)

// Issue is one consistency finding. Pass is the index of the offending pass,
// or -1 for mapping findings.
type Issue struct {
	Kind     IssueKind
	Pass     int
	Resource ResourceID
}

func (i Issue) String() string {
	switch i.Kind {
	case IssueDanglingRead:
		return fmt.Sprintf("pass %d reads unknown resource %d", i.Pass, i.Resource)
	case IssueDanglingWrite:
		return fmt.Sprintf("pass %d writes unknown resource %d", i.Pass, i.Resource)
	case IssueKeyMismatch:
		return fmt.Sprintf("resource key %d does not match its id", i.Resource)
	default:
		return string(i.Kind)
	}
}

// Inspect reports the producer-contract violations found in a snapshot. It
// never modifies the snapshot and a non-empty result does not make the snapshot
// invalid: dangling references are permitted and are shown by viewers as
// unknown resources.
//
// Findings are ordered: mapping findings by key first, then pass findings in
// pass order, reads before writes.
func Inspect(info *FrameGraphInfo) []Issue {
	var issues []Issue

	resources := info.Resources()
	keys := make([]ResourceID, 0, len(resources))
	for key := range resources {
		keys = append(keys, key)
	}
	slices.SortFunc(keys, cmp.Compare[ResourceID])
	for _, key := range keys {
		if resources[key].ID() != key {
			issues = append(issues, Issue{Kind: IssueKeyMismatch, Pass: -1, Resource: key})
		}
	}

	for i, pass := range info.Passes() {
		for _, id := range pass.Reads() {
			if _, ok := resources[id]; !ok {
				issues = append(issues, Issue{Kind: IssueDanglingRead, Pass: i, Resource: id})
			}
		}
		for _, id := range pass.Writes() {
			if _, ok := resources[id]; !ok {
				issues = append(issues, Issue{Kind: IssueDanglingWrite, Pass: i, Resource: id})
			}
		}
	}
	return issues
}
