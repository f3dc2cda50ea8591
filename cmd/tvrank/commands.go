package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"strconv"

	"github.com/hupe1980/tvrank"
	"github.com/hupe1980/tvrank/imdb"
	"github.com/hupe1980/tvrank/keywords"
)

// titleInfoFile pins a directory to a title when its name is ambiguous.
const titleInfoFile = "tvrank.json"

var nameYearRe = regexp.MustCompile(`^(.+)\s+\((\d{4})\)$`)

// parseNameYear splits "NAME (YYYY)".
func parseNameYear(s string) (string, uint16, bool) {
	m := nameYearRe.FindStringSubmatch(s)
	if m == nil {
		return "", 0, false
	}
	year, err := strconv.ParseUint(m[2], 10, 16)
	if err != nil {
		return "", 0, false
	}
	return m[1], uint16(year), true
}

type app struct {
	svc    *tvrank.Service
	out    io.Writer
	errOut io.Writer
	log    *tvrank.Logger
	byYear bool
}

func (a *app) run(ctx context.Context, cmd, arg string) error {
	switch cmd {
	case "title":
		return a.title(ctx, arg)
	case "movies-dir":
		return a.titlesDir(ctx, arg, imdb.Movies)
	case "series-dir":
		return a.titlesDir(ctx, arg, imdb.Series)
	}
	return fmt.Errorf("unknown command %q", cmd)
}

func (a *app) title(ctx context.Context, input string) error {
	var (
		ks      keywords.KeywordSet
		name    = input
		yearPtr *uint16
	)

	if n, year, ok := parseNameYear(input); ok {
		name, yearPtr = n, &year
	} else {
		a.log.WarnContext(ctx, "searching by keywords", slog.String("input", input))
		var err error
		if ks, err = keywords.New(input); err != nil {
			return fmt.Errorf("bad keywords %q: %w", input, err)
		}
		a.log.InfoContext(ctx, "keywords", slog.String("keywords", ks.String()))
	}

	for _, cl := range []imdb.Classification{imdb.Movies, imdb.Series} {
		var (
			results []tvrank.Result
			err     error
		)
		if yearPtr != nil {
			results, err = a.svc.ByTitle(ctx, cl, name, yearPtr)
		} else {
			results, err = a.svc.ByKeywords(ctx, cl, ks)
		}
		if err != nil {
			return err
		}

		label := "movie"
		if cl == imdb.Series {
			label = "series"
		}

		if len(results) == 0 {
			fmt.Fprintf(a.errOut, "No %s matches found for `%s`\n", label, displayTitle(name, yearPtr))
			continue
		}

		fmt.Fprintf(a.errOut, "Found %d %s %s for `%s`:\n",
			len(results), label, plural(len(results), "match", "matches"), displayTitle(name, yearPtr))
		sortResults(results, a.byYear)
		if err := printTable(a.out, results); err != nil {
			return err
		}
	}

	return nil
}

type titleInfo struct {
	IMDb struct {
		ID string `json:"id"`
	} `json:"imdb"`
}

// titlesDir looks up every subdirectory of root by name. Series directories
// are only taken from the first level and may omit the year.
func (a *app) titlesDir(ctx context.Context, root string, cl imdb.Classification) error {
	var (
		series    = cl == imdb.Series
		anyValid  bool
		anyMatch  bool
		collected []tvrank.Result
	)

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() || path == root {
			return nil
		}
		if err := ctx.Err(); err != nil {
			return err
		}

		if res, ok := a.byInfoFile(ctx, path, cl); ok {
			anyValid, anyMatch = true, true
			collected = append(collected, res)
			return skipIf(series)
		}

		base := filepath.Base(path)
		name, year, ok := parseNameYear(base)
		var yearPtr *uint16
		switch {
		case ok:
			yearPtr = &year
		case series:
			name = base
		default:
			a.log.WarnContext(ctx, "skipping directory not named TITLE (YYYY)", slog.String("path", path))
			return nil
		}
		anyValid = true

		results, err := a.svc.ByTitle(ctx, cl, name, yearPtr)
		if err != nil {
			return err
		}

		switch len(results) {
		case 0:
			fmt.Fprintf(a.errOut, "No matches found for `%s`\n", displayTitle(name, yearPtr))
		case 1:
			anyMatch = true
			collected = append(collected, results...)
		default:
			anyMatch = true
			fmt.Fprintf(a.errOut, "Found %d matches for `%s`:\n", len(results), displayTitle(name, yearPtr))
			sortResults(results, a.byYear)
			if err := printTable(a.out, results); err != nil {
				return err
			}
		}

		return skipIf(series)
	})
	if err != nil {
		return err
	}

	switch {
	case !anyValid:
		fmt.Fprintln(a.out, "No valid directory names")
		return nil
	case !anyMatch:
		fmt.Fprintln(a.out, "None of the directories matched any titles")
		return nil
	case len(collected) == 0:
		return nil
	}

	sortResults(collected, a.byYear)
	return printTable(a.out, collected)
}

// byInfoFile resolves a directory through its tvrank.json, if any.
func (a *app) byInfoFile(ctx context.Context, dir string, cl imdb.Classification) (tvrank.Result, bool) {
	path := filepath.Join(dir, titleInfoFile)

	data, err := os.ReadFile(path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			a.log.WarnContext(ctx, "ignoring title info", slog.String("path", path), slog.Any("error", err))
		}
		return tvrank.Result{}, false
	}

	var info titleInfo
	if err := json.Unmarshal(data, &info); err != nil {
		a.log.WarnContext(ctx, "ignoring title info", slog.String("path", path), slog.Any("error", err))
		return tvrank.Result{}, false
	}

	id, err := imdb.ParseTitleID([]byte(info.IMDb.ID))
	if err != nil {
		a.log.WarnContext(ctx, "ignoring title id", slog.String("path", path), slog.Any("error", err))
		return tvrank.Result{}, false
	}

	results, err := a.svc.ByTitleID(ctx, cl, id)
	switch {
	case err != nil:
		a.log.WarnContext(ctx, "title id lookup failed", slog.String("path", path), slog.Any("error", err))
	case len(results) == 0:
		a.log.WarnContext(ctx, "title id not found, ignoring title info",
			slog.String("id", id.String()), slog.String("path", path))
	case len(results) > 1:
		a.log.WarnContext(ctx, "title id matched more than once, ignoring title info",
			slog.String("id", id.String()), slog.Int("matches", len(results)))
	default:
		return results[0], true
	}
	return tvrank.Result{}, false
}

func skipIf(cond bool) error {
	if cond {
		return filepath.SkipDir
	}
	return nil
}
