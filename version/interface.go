/*
 * MIT License
 *
 * Copyright (c) 2022 Nicolas JUHEL
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 *
 *
 */

// Package version carries the build identity of an application (release,
// build hash, build date) for banners, monitors and API info endpoints.
package version

import (
	"fmt"
	"path"
	"reflect"
	"strings"
)

// Version exposes the build identity of the running application.
type Version interface {
	// GetAppId returns a stable identifier made of package and release.
	GetAppId() string

	// GetAuthor returns the declared author of the application.
	GetAuthor() string

	// GetBuild returns the VCS hash the binary was built from.
	GetBuild() string

	// GetDate returns the build date as given at construction.
	GetDate() string

	// GetDescription returns the one-line description of the application.
	GetDescription() string

	// GetHeader returns a printable "package (release, build)" banner line.
	GetHeader() string

	// GetLicenseName returns the name of the license the application is
	// distributed under.
	GetLicenseName() string

	// GetPackage returns the short package name of the application.
	GetPackage() string

	// GetPrefix returns the uppercase prefix usable for env var lookups.
	GetPrefix() string

	// GetRelease returns the release / semver string.
	GetRelease() string

	// GetRootPackagePath returns the root import path detected from the
	// source struct given at construction, empty if unknown.
	GetRootPackagePath() string
}

// NewVersion assembles a Version value. The source parameter is any struct
// of the main package, used to detect the root package path; numSubPackage
// is the number of path levels to strip from that detected path.
func NewVersion(license License, Package, Description, Date, Build, Release, Author, Prefix string, source interface{}, numSubPackage int) Version {
	var root string

	if source != nil {
		if t := reflect.TypeOf(source); t.PkgPath() != "" {
			root = t.PkgPath()
			for i := 0; i < numSubPackage && root != "."; i++ {
				root = path.Dir(root)
			}
		}
	}

	if Package == "" {
		Package = path.Base(root)
	}

	if !strings.HasPrefix(strings.ToLower(Release), "v") {
		Release = "v" + Release
	}

	return &versionModel{
		license: license,
		pkg:     Package,
		desc:    Description,
		date:    Date,
		build:   Build,
		release: Release,
		author:  Author,
		prefix:  strings.ToUpper(Prefix),
		root:    root,
	}
}

type versionModel struct {
	license License
	pkg     string
	desc    string
	date    string
	build   string
	release string
	author  string
	prefix  string
	root    string
}

func (v *versionModel) GetAppId() string {
	return fmt.Sprintf("%s-%s", v.pkg, v.release)
}

func (v *versionModel) GetAuthor() string {
	return v.author
}

func (v *versionModel) GetBuild() string {
	return v.build
}

func (v *versionModel) GetDate() string {
	return v.date
}

func (v *versionModel) GetDescription() string {
	return v.desc
}

func (v *versionModel) GetHeader() string {
	return fmt.Sprintf("%s (%s, %s)", v.pkg, v.release, v.build)
}

func (v *versionModel) GetLicenseName() string {
	return v.license.Name()
}

func (v *versionModel) GetPackage() string {
	return v.pkg
}

func (v *versionModel) GetPrefix() string {
	return v.prefix
}

func (v *versionModel) GetRelease() string {
	return v.release
}

func (v *versionModel) GetRootPackagePath() string {
	return v.root
}
