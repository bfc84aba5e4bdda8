// CI functions for hstage
//
// Lint, test and build hstage in containers, and stage a header library checkout
// to inspect the result without installing anything locally.

package main

import (
	"fmt"
	"runtime"
	"strings"

	"hstage/dagger/internal/dagger"
)

const containerPath = "/go/src/github.com/lerenn/hstage"

// Platforms the release binaries are built for.
var platforms = []dagger.Platform{
	"linux/amd64",
	"linux/arm64",
	"darwin/amd64",
	"darwin/arm64",
	"windows/amd64",
}

type Hstage struct{}

// Lint runs golangci-lint on the main repo (./...) only.
func (ci *Hstage) Lint(sourceDir *dagger.Directory) *dagger.Container {
	c := dag.Container().
		From("golangci/golangci-lint:v2.4.0").
		WithMountedCache("/root/.cache/golangci-lint", dag.CacheVolume("golangci-lint"))

	return ci.withGoCodeAndCacheAsWorkDirectory(c, sourceDir).
		WithExec([]string{"golangci-lint", "run", "--timeout", "10m", "./..."})
}

// UnitTests returns a container that runs the unit tests.
func (ci *Hstage) UnitTests(sourceDir *dagger.Directory) *dagger.Container {
	c := dag.Container().From("golang:" + goVersion() + "-alpine")
	return ci.withGoCodeAndCacheAsWorkDirectory(c, sourceDir).
		WithExec([]string{"sh", "-c", "go test -tags=unit ./..."})
}

// IntegrationTests returns a container that runs the integration tests.
func (ci *Hstage) IntegrationTests(sourceDir *dagger.Directory) *dagger.Container {
	c := dag.Container().From("golang:" + goVersion() + "-alpine")
	return ci.withGoCodeAndCacheAsWorkDirectory(c, sourceDir).
		WithExec([]string{"sh", "-c", "go test -tags=integration ./..."})
}

// Binaries builds hstage for every release platform.
func (ci *Hstage) Binaries(sourceDir *dagger.Directory, version string) *dagger.Directory {
	out := dag.Directory()
	for _, platform := range platforms {
		out = out.WithFile(binaryName(platform), ci.binary(sourceDir, platform, version))
	}
	return out
}

// Stage runs hstage against a header library checkout and returns the staging tree.
func (ci *Hstage) Stage(sourceDir *dagger.Directory, library *dagger.Directory) *dagger.Directory {
	binary := ci.binary(sourceDir, dagger.Platform("linux/"+runtime.GOARCH), "ci")
	return dag.Container().
		From("alpine").
		WithFile("/usr/local/bin/hstage", binary).
		WithMountedDirectory("/library", library).
		WithWorkdir("/library").
		WithExec([]string{"hstage", "stage", "--dest", "/out/qsint"}).
		Directory("/out/qsint")
}

func (ci *Hstage) binary(sourceDir *dagger.Directory, platform dagger.Platform, version string) *dagger.File {
	os, arch := splitPlatform(platform)
	c := dag.Container().From("golang:" + goVersion() + "-alpine")
	return ci.withGoCodeAndCacheAsWorkDirectory(c, sourceDir).
		WithEnvVariable("CGO_ENABLED", "0").
		WithEnvVariable("GOOS", os).
		WithEnvVariable("GOARCH", arch).
		WithExec([]string{"go", "build", "-ldflags", "-X main.Version=" + version,
			"-o", "/out/hstage", "./cmd/hstage"}).
		File("/out/hstage")
}

func (ci *Hstage) withGoCodeAndCacheAsWorkDirectory(
	c *dagger.Container,
	sourceDir *dagger.Directory,
) *dagger.Container {
	return c.
		// Add Go caches
		WithMountedCache("/root/.cache/go-build", dag.CacheVolume("gobuild")).
		WithMountedCache("/go/pkg/mod", dag.CacheVolume("gocache")).

		// Add source code
		WithMountedDirectory(containerPath, sourceDir).

		// Add workdir
		WithWorkdir(containerPath)
}

func splitPlatform(platform dagger.Platform) (string, string) {
	os, arch, _ := strings.Cut(string(platform), "/")
	return os, arch
}

func binaryName(platform dagger.Platform) string {
	os, arch := splitPlatform(platform)
	name := fmt.Sprintf("hstage-%s-%s", os, arch)
	if os == "windows" {
		name += ".exe"
	}
	return name
}

func goVersion() string {
	return runtime.Version()[2:]
}
