// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// AppBuildInfo carries build metadata injected with -ldflags. Both binaries
// print it on start and the server reports its version on /api/version.
type AppBuildInfo struct {
	buildVersion string
	buildDate    string
	buildCommit  string
}

// NewAppBuildInfo constructs [AppBuildInfo] from the provided build metadata.
func NewAppBuildInfo(buildVersion, buildDate, buildCommit string) AppBuildInfo {
	return AppBuildInfo{
		buildVersion: buildVersion,
		buildDate:    buildDate,
		buildCommit:  buildCommit,
	}
}

// BuildInfoView is the printable form of [AppBuildInfo].
type BuildInfoView struct {
	Version string `json:"version"`
	Date    string `json:"date"`
	Commit  string `json:"commit"`
}

// View converts the build info into its serializable form, substituting
// "N/A" for values that were not injected at link time.
func (a AppBuildInfo) View() BuildInfoView {
	orNA := func(s string) string {
		if s == "" {
			return "N/A"
		}
		return s
	}

	return BuildInfoView{
		Version: orNA(a.buildVersion),
		Date:    orNA(a.buildDate),
		Commit:  orNA(a.buildCommit),
	}
}
