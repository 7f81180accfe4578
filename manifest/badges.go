package manifest

import (
	"fmt"
	"strings"
)

// Badge attribute defaults.
const (
	DefaultBranch   = "master"
	DefaultService  = "github"
	DefaultWorkflow = "main"
)

// Badge formats one provider's badge from its attributes. It returns false
// when the attributes are not enough to build one.
type Badge func(attrs map[string]string) (string, bool)

// BadgeOrder lists the supported providers in the order their badges are
// rendered.
var BadgeOrder = []string{
	"appveyor",
	"circle-ci",
	"gitlab",
	"travis-ci",
	"github",
	"codecov",
	"coveralls",
	"is-it-maintained-issue-resolution",
	"is-it-maintained-open-issues",
	"maintenance",
}

// Badges maps a [badges] key in Cargo.toml to its formatter.
var Badges = map[string]Badge{
	"appveyor":                          appveyor,
	"circle-ci":                         circleCI,
	"gitlab":                            gitlab,
	"travis-ci":                         travisCI,
	"github":                            github,
	"codecov":                           codecov,
	"coveralls":                         coveralls,
	"is-it-maintained-issue-resolution": issueResolution,
	"is-it-maintained-open-issues":      openIssues,
	"maintenance":                       maintenance,
}

// RenderBadges formats a [badges] table in [BadgeOrder]. Unknown providers
// and badges missing a repository are skipped.
func RenderBadges(table map[string]map[string]any) []string {
	var out []string

	for _, name := range BadgeOrder {
		raw, ok := table[name]
		if !ok {
			continue
		}

		attrs := make(map[string]string, len(raw))
		for k, v := range raw {
			attrs[k] = fmt.Sprint(v)
		}

		if badge, ok := Badges[name](attrs); ok {
			out = append(out, badge)
		}
	}

	return out
}

func appveyor(attrs map[string]string) (string, bool) {
	repo, ok := attrs["repository"]
	if !ok {
		return "", false
	}

	branch := attr(attrs, "branch", DefaultBranch)
	service := attr(attrs, "service", DefaultService)

	return fmt.Sprintf(
		"[![Build Status](https://ci.appveyor.com/api/projects/status/%s/%s?branch=%s&svg=true)]"+
			"(https://ci.appveyor.com/project/%s/branch/%s)",
		service, repo, branch, repo, branch,
	), true
}

func circleCI(attrs map[string]string) (string, bool) {
	repo, ok := attrs["repository"]
	if !ok {
		return "", false
	}

	branch := percentEncode(attr(attrs, "branch", DefaultBranch))
	service := serviceShortName(attr(attrs, "service", DefaultService))

	return fmt.Sprintf(
		"[![Build Status](https://circleci.com/%s/%s/tree/%s.svg?style=shield)]"+
			"(https://circleci.com/%s/%s/tree/%s)",
		service, repo, branch, service, repo, branch,
	), true
}

func gitlab(attrs map[string]string) (string, bool) {
	repo, ok := attrs["repository"]
	if !ok {
		return "", false
	}

	branch := percentEncode(attr(attrs, "branch", DefaultBranch))

	return fmt.Sprintf(
		"[![Build Status](https://gitlab.com/%s/badges/%s/pipeline.svg)]"+
			"(https://gitlab.com/%s/commits/%s)",
		repo, branch, repo, branch,
	), true
}

func travisCI(attrs map[string]string) (string, bool) {
	repo, ok := attrs["repository"]
	if !ok {
		return "", false
	}

	branch := percentEncode(attr(attrs, "branch", DefaultBranch))

	host := "travis-ci.org"
	if attrs["service"] == "travis-ci.com" {
		host = "travis-ci.com"
	}

	return fmt.Sprintf(
		"[![Build Status](https://%s/%s.svg?branch=%s)](https://%s/%s)",
		host, repo, branch, host, repo,
	), true
}

func github(attrs map[string]string) (string, bool) {
	repo, ok := attrs["repository"]
	if !ok {
		return "", false
	}

	workflow := attr(attrs, "workflow", DefaultWorkflow)

	return fmt.Sprintf(
		"[![Workflow Status](https://github.com/%s/workflows/%s/badge.svg)]"+
			"(https://github.com/%s/actions?query=workflow%%3A%%22%s%%22)",
		repo, percentEncode(workflow),
		repo, percentEncode(strings.ReplaceAll(workflow, " ", "+")),
	), true
}

func codecov(attrs map[string]string) (string, bool) {
	repo, ok := attrs["repository"]
	if !ok {
		return "", false
	}

	branch := percentEncode(attr(attrs, "branch", DefaultBranch))
	service := serviceShortName(attr(attrs, "service", DefaultService))

	return fmt.Sprintf(
		"[![Coverage Status](https://codecov.io/%s/%s/branch/%s/graph/badge.svg)]"+
			"(https://codecov.io/%s/%s)",
		service, repo, branch, service, repo,
	), true
}

func coveralls(attrs map[string]string) (string, bool) {
	repo, ok := attrs["repository"]
	if !ok {
		return "", false
	}

	branch := percentEncode(attr(attrs, "branch", DefaultBranch))
	service := attr(attrs, "service", DefaultService)

	return fmt.Sprintf(
		"[![Coverage Status](https://coveralls.io/repos/%s/%s/badge.svg?branch=%s)]"+
			"(https://coveralls.io/%s/%s?branch=%s)",
		service, repo, branch, service, repo, branch,
	), true
}

func issueResolution(attrs map[string]string) (string, bool) {
	repo, ok := attrs["repository"]
	if !ok {
		return "", false
	}

	return fmt.Sprintf(
		"[![Average time to resolve an issue](https://isitmaintained.com/badge/resolution/%s.svg)]"+
			"(https://isitmaintained.com/project/%s \"Average time to resolve an issue\")",
		repo, repo,
	), true
}

func openIssues(attrs map[string]string) (string, bool) {
	repo, ok := attrs["repository"]
	if !ok {
		return "", false
	}

	return fmt.Sprintf(
		"[![Percentage of issues still open](https://isitmaintained.com/badge/open/%s.svg)]"+
			"(https://isitmaintained.com/project/%s \"Percentage of issues still open\")",
		repo, repo,
	), true
}

// maintenanceStatus maps a crates.io maintenance status to its shields.io
// label and color.
var maintenanceStatus = map[string]string{
	"actively-developed":     "actively--developed-brightgreen",
	"passively-maintained":   "passively--maintained-yellowgreen",
	"as-is":                  "as--is-yellow",
	"experimental":           "experimental-blue",
	"looking-for-maintainer": "looking--for--maintainer-darkblue",
	"deprecated":             "deprecated-red",
}

func maintenance(attrs map[string]string) (string, bool) {
	status, ok := maintenanceStatus[attrs["status"]]
	if !ok {
		return "", false
	}

	return fmt.Sprintf("![Maintenance](https://img.shields.io/badge/maintenance-%s.svg)", status), true
}

func attr(attrs map[string]string, key, fallback string) string {
	if v, ok := attrs[key]; ok && v != "" {
		return v
	}

	return fallback
}

func serviceShortName(service string) string {
	switch service {
	case "bitbucket":
		return "bb"
	case "gitlab":
		return "gl"
	}

	return "gh"
}

// percentEncode escapes every byte that is not an ASCII letter or digit.
func percentEncode(s string) string {
	var sb strings.Builder

	for i := range len(s) {
		c := s[i]
		if ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z') || ('0' <= c && c <= '9') {
			sb.WriteByte(c)
			continue
		}

		fmt.Fprintf(&sb, "%%%02X", c)
	}

	return sb.String()
}
