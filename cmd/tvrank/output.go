package main

import (
	"cmp"
	"fmt"
	"io"
	"slices"
	"strings"
	"text/tabwriter"

	"github.com/hupe1980/tvrank"
)

// sortResults orders best first: rating, year, then title, all descending.
// byYear moves the year in front of the rating. Missing values sort last.
func sortResults(results []tvrank.Result, byYear bool) {
	slices.SortStableFunc(results, func(a, b tvrank.Result) int {
		first, second := compareRating(b, a), cmp.Compare(b.Title.Year(), a.Title.Year())
		if byYear {
			first, second = second, first
		}
		if first != 0 {
			return first
		}
		if second != 0 {
			return second
		}
		return strings.Compare(b.Title.PrimaryTitle, a.Title.PrimaryTitle)
	})
}

func compareRating(a, b tvrank.Result) int {
	switch {
	case a.Rating == nil && b.Rating == nil:
		return 0
	case a.Rating == nil:
		return -1
	case b.Rating == nil:
		return 1
	}
	if c := cmp.Compare(a.Rating.Score, b.Rating.Score); c != 0 {
		return c
	}
	return cmp.Compare(a.Rating.Votes, b.Rating.Votes)
}

func printTable(w io.Writer, results []tvrank.Result) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "Primary Title\tOriginal Title\tYear\tRating\tVotes\tRuntime\tGenres\tType\tIMDb ID\tIMDb Link")

	for _, r := range results {
		t := r.Title

		original := ""
		if t.OriginalTitle != t.PrimaryTitle {
			original = t.OriginalTitle
		}

		year := ""
		if t.StartYear != nil {
			year = fmt.Sprint(*t.StartYear)
		}

		rating, votes := "", ""
		if r.Rating != nil {
			rating = fmt.Sprintf("%.1f", r.Rating.Value())
			votes = fmt.Sprint(r.Rating.Votes)
		}

		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			t.PrimaryTitle, original, year, rating, votes,
			runtime(t.RuntimeMinutes), t.Genres, t.Type, t.ID, t.ID.URL())
	}

	return tw.Flush()
}

func runtime(minutes *uint16) string {
	if minutes == nil {
		return ""
	}
	h, m := *minutes/60, *minutes%60
	switch {
	case h == 0:
		return fmt.Sprintf("%dm", m)
	case m == 0:
		return fmt.Sprintf("%dh", h)
	}
	return fmt.Sprintf("%dh %dm", h, m)
}

func displayTitle(name string, year *uint16) string {
	if year == nil {
		return name
	}
	return fmt.Sprintf("%s (%d)", name, *year)
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
