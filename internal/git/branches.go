package git

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/sahilm/fuzzy"
)

// refFormat is the for-each-ref format used for branch listings.
// Fields are separated by \x00 so branch names may contain any
// printable character.
const refFormat = "%(refname:short)%00%(objectname:short)%00%(committerdate:unix)%00%(committerdate:relative)"

// Branch is a local or remote-tracking branch with the metadata the
// listings need.
type Branch struct {
	Name        string
	Hash        string
	CommittedAt time.Time
	Relative    string
	Remote      bool
}

// ListBranches returns branches sorted by committer date, most recent
// first. Sorting is delegated to git via --sort=-committerdate. With
// includeRemote set, remote-tracking branches of the given remote are
// included after de-duplication against local names.
func ListBranches(ctx context.Context, remote string, includeRemote bool) ([]Branch, error) {
	args := []string{"for-each-ref", "--sort=-committerdate", "--format=" + refFormat, "refs/heads"}
	if includeRemote {
		args = append(args, "refs/remotes/"+remote)
	}
	output, err := outputGit(ctx, "", args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list branches: %v", err)
	}
	return parseBranches(output, remote), nil
}

// parseBranches parses for-each-ref output in refFormat. Remote refs keep
// their short name minus the "<remote>/" prefix; the remote's HEAD ref and
// remote branches shadowed by a local branch of the same name are dropped.
func parseBranches(output []byte, remote string) []Branch {
	remotePrefix := remote + "/"

	var branches []Branch
	local := make(map[string]bool)

	for _, line := range strings.Split(strings.TrimSpace(string(output)), "\n") {
		if line == "" {
			continue
		}
		fields := strings.SplitN(line, "\x00", 4)
		if len(fields) != 4 {
			continue
		}

		b := Branch{Name: fields[0], Hash: fields[1], Relative: fields[3]}
		if ts, err := strconv.ParseInt(fields[2], 10, 64); err == nil {
			b.CommittedAt = time.Unix(ts, 0)
		}

		if strings.HasPrefix(b.Name, remotePrefix) {
			b.Name = strings.TrimPrefix(b.Name, remotePrefix)
			b.Remote = true
			if b.Name == "HEAD" {
				continue
			}
		} else {
			local[b.Name] = true
		}

		branches = append(branches, b)
	}

	// Drop remote branches shadowed by a local one. The date sort
	// interleaves local and remote refs, so this needs a second pass over
	// the collected names.
	filtered := branches[:0]
	for _, b := range branches {
		if b.Remote && local[b.Name] {
			continue
		}
		filtered = append(filtered, b)
	}

	return filtered
}

// branchSource adapts a branch slice to fuzzy.Source.
type branchSource []Branch

func (s branchSource) String(i int) string { return s[i].Name }
func (s branchSource) Len() int            { return len(s) }

// FilterBranches returns the branches whose name matches the filter,
// fuzzy-ranked, preserving the most-recent-first order among equal ranks.
// An empty filter returns the input unchanged.
func FilterBranches(branches []Branch, filter string) []Branch {
	if filter == "" {
		return branches
	}

	matches := fuzzy.FindFrom(filter, branchSource(branches))

	result := make([]Branch, 0, len(matches))
	for _, m := range matches {
		result = append(result, branches[m.Index])
	}
	return result
}

// CapBranches truncates the branch list to at most limit entries.
func CapBranches(branches []Branch, limit int) []Branch {
	if len(branches) > limit {
		return branches[:limit]
	}
	return branches
}
