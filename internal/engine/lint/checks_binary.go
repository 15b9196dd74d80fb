package lint

import (
	"context"
	"fmt"
	"path/filepath"

	"go.trai.ch/packlint/internal/core/domain"
	"golang.org/x/sync/errgroup"
)

// toolQueryConcurrency caps the parallel tool invocations inside a single
// check. Results are re-ordered by artifact index, so diagnostic output
// stays deterministic.
const toolQueryConcurrency = 4

func notEvaluatedTool(in *Input, what string) {
	in.Report.Info(fmt.Sprintf("Not evaluated: %s (binary inspection tool not available)", what))
}

func notEvaluatedHeaders(in *Input, what string) {
	in.Report.Info(fmt.Sprintf("Not evaluated: %s (native header parsing not available)", what))
}

// checkMatchingDebugAndReleaseBinaries verifies the debug and release trees
// carry the same number of binaries. Skipped when the recipe declares a
// single configuration.
func checkMatchingDebugAndReleaseBinaries(debug, release func(*Input) []string) checkFunc {
	return func(_ context.Context, in *Input) (domain.LintStatus, error) {
		if in.Pre.SingleConfiguration() {
			return domain.LintSuccess, nil
		}

		debugBinaries := debug(in)
		releaseBinaries := release(in)
		debugCount := len(debugBinaries)
		releaseCount := len(releaseBinaries)
		if debugCount == releaseCount {
			return domain.LintSuccess, nil
		}

		in.Report.Warn(fmt.Sprintf(
			"Mismatching number of debug and release binaries. Found %d for debug but %d for release.",
			debugCount, releaseCount))
		in.Report.Info("Debug binaries", in.relPaths(debugBinaries)...)
		in.Report.Info("Release binaries", in.relPaths(releaseBinaries)...)
		if debugCount == 0 {
			in.Report.Warn("Debug binaries were not found")
		}
		if releaseCount == 0 {
			in.Report.Warn("Release binaries were not found")
		}
		return domain.LintErrorDetected, nil
	}
}

// checkLibsPresentForDlls verifies import libs exist wherever dynamic
// modules exist.
func checkLibsPresentForDlls(libs, dlls func(*Input) []string, libDir ...string) checkFunc {
	return func(_ context.Context, in *Input) (domain.LintStatus, error) {
		libCount := len(libs(in))
		dllCount := len(dlls(in))

		if libCount == 0 && dllCount != 0 {
			dir := in.Path(libDir...)
			in.Report.Warn(fmt.Sprintf("Import libs were not present in %s", filepath.ToSlash(dir)))
			in.Report.Warn("If this is intended, add the following to the recipe manifest:\n" +
				"    " + domain.PolicyDLLsWithoutLibs.RecipeSetting())
			return domain.LintErrorDetected, nil
		}
		return domain.LintSuccess, nil
	}
}

type fileAndArch struct {
	file string
	arch string
}

func warnInvalidArchitectureFiles(in *Input, mismatches []fileAndArch) {
	in.Report.Warn("The following files were built for an incorrect architecture:")
	for _, m := range mismatches {
		in.Report.Warn(fmt.Sprintf("Expected %s, but was: %s", in.Pre.TargetArchitecture, m.arch),
			in.relPaths([]string{m.file})...)
	}
}

// checkLibArchitecture verifies every static/import lib was built for the
// declared target architecture. An archive exposing no machine types cannot
// be judged and is skipped; one exposing several is a fatal inconsistency.
func checkLibArchitecture(_ context.Context, in *Input) (domain.LintStatus, error) {
	if !in.Extract.HeadersAvailable() {
		notEvaluatedHeaders(in, "static library architecture")
		return domain.LintSuccess, nil
	}

	var mismatches []fileAndArch
	for _, lib := range in.Libs() {
		arch, ok, err := in.Extract.StaticArchitecture(lib)
		if err != nil {
			return domain.LintSuccess, err
		}
		if !ok {
			continue
		}
		if arch != in.Pre.TargetArchitecture {
			mismatches = append(mismatches, fileAndArch{file: lib, arch: arch})
		}
	}

	if len(mismatches) > 0 {
		warnInvalidArchitectureFiles(in, mismatches)
		return domain.LintErrorDetected, nil
	}
	return domain.LintSuccess, nil
}

// checkDllArchitecture verifies every dynamic module was built for the
// declared target architecture.
func checkDllArchitecture(_ context.Context, in *Input) (domain.LintStatus, error) {
	if !in.Extract.HeadersAvailable() {
		notEvaluatedHeaders(in, "dynamic module architecture")
		return domain.LintSuccess, nil
	}

	var mismatches []fileAndArch
	for _, dll := range in.Dlls() {
		arch, err := in.Extract.DynamicArchitecture(dll)
		if err != nil {
			return domain.LintSuccess, err
		}
		if arch != in.Pre.TargetArchitecture {
			mismatches = append(mismatches, fileAndArch{file: dll, arch: arch})
		}
	}

	if len(mismatches) > 0 {
		warnInvalidArchitectureFiles(in, mismatches)
		return domain.LintErrorDetected, nil
	}
	return domain.LintSuccess, nil
}

// queryEach runs one tool query per artifact, bounded-parallel, and returns
// the answers indexed like the input so evaluation order stays canonical.
func queryEach[T any](ctx context.Context, artifacts []string, query func(context.Context, string) (T, error)) ([]T, error) {
	results := make([]T, len(artifacts))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(toolQueryConcurrency)

	for i, artifact := range artifacts {
		g.Go(func() error {
			res, err := query(gctx, artifact)
			if err != nil {
				return err
			}
			results[i] = res
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// checkDllExports verifies every dynamic module exposes at least one export.
func checkDllExports(ctx context.Context, in *Input) (domain.LintStatus, error) {
	if !in.Extract.ToolAvailable() {
		notEvaluatedTool(in, "dynamic module exports")
		return domain.LintSuccess, nil
	}

	dlls := in.Dlls()
	hasExports, err := queryEach(ctx, dlls, in.Extract.HasExports)
	if err != nil {
		return domain.LintSuccess, err
	}

	var noExports []string
	for i, dll := range dlls {
		if !hasExports[i] {
			noExports = append(noExports, dll)
		}
	}

	if len(noExports) > 0 {
		in.Report.Warn("The following DLLs have no exports:", in.relPaths(noExports)...)
		in.Report.Warn("DLLs without any exports are likely a bug in the build script.")
		return domain.LintErrorDetected, nil
	}
	return domain.LintSuccess, nil
}

// checkDllAppContainerBit verifies the sandboxed-execution bit on every
// dynamic module when targeting the sandboxed platform variant.
func checkDllAppContainerBit(ctx context.Context, in *Input) (domain.LintStatus, error) {
	if in.Pre.SystemName != "WindowsStore" {
		return domain.LintSuccess, nil
	}
	if !in.Extract.ToolAvailable() {
		notEvaluatedTool(in, "dynamic module app-container bit")
		return domain.LintSuccess, nil
	}

	dlls := in.Dlls()
	hasBit, err := queryEach(ctx, dlls, in.Extract.HasAppContainerBit)
	if err != nil {
		return domain.LintSuccess, err
	}

	var missingBit []string
	for i, dll := range dlls {
		if !hasBit[i] {
			missingBit = append(missingBit, dll)
		}
	}

	if len(missingBit) > 0 {
		in.Report.Warn("The following DLLs do not have the App Container bit set:", in.relPaths(missingBit)...)
		in.Report.Warn("This bit is required for Windows Store apps.")
		return domain.LintErrorDetected, nil
	}
	return domain.LintSuccess, nil
}

// checkOutdatedCrtLinkage verifies no dynamic module depends on a
// deprecated dynamic CRT for the declared toolset generation.
func checkOutdatedCrtLinkage(ctx context.Context, in *Input) (domain.LintStatus, error) {
	if !in.Extract.ToolAvailable() {
		notEvaluatedTool(in, "outdated dynamic CRT linkage")
		return domain.LintSuccess, nil
	}

	dlls := in.Dlls()
	dependents, err := queryEach(ctx, dlls, in.Extract.Dependents)
	if err != nil {
		return domain.LintSuccess, err
	}

	outdated := domain.OutdatedDynamicCrts(in.Pre.ToolsetVersion)

	var findings []string
	for i, dll := range dlls {
		for _, crt := range outdated {
			if crt.MatchesDependents(dependents[i]) {
				findings = append(findings, fmt.Sprintf("%s: %s", in.relPaths([]string{dll})[0], crt.Name))
				break
			}
		}
	}

	if len(findings) > 0 {
		in.Report.Warn("Detected outdated dynamic CRT in the following files:", findings...)
		in.Report.Info("To inspect the dll files, use:\n    dumpbin.exe /dependents mydllfile.dll")
		return domain.LintErrorDetected, nil
	}
	return domain.LintSuccess, nil
}

// checkCrtLinkageOfLibs verifies static libraries carry the CRT linkage
// markers of their expected build type and none of the other three.
func checkCrtLinkageOfLibs(config domain.ConfigurationType, libs func(*Input) []string) checkFunc {
	return func(ctx context.Context, in *Input) (domain.LintStatus, error) {
		if !in.Extract.ToolAvailable() {
			notEvaluatedTool(in, fmt.Sprintf("%s CRT linkage of static libraries", config))
			return domain.LintSuccess, nil
		}

		expected := domain.BuildTypeOf(config, in.Build.CrtLinkage)

		var badTypes []domain.BuildType
		for _, bt := range domain.BuildTypes {
			if bt != expected {
				badTypes = append(badTypes, bt)
			}
		}

		targets := libs(in)
		directives, err := queryEach(ctx, targets, in.Extract.Directives)
		if err != nil {
			return domain.LintSuccess, err
		}

		var findings []string
		for i, lib := range targets {
			for _, bad := range badTypes {
				if bad.MatchesCrt(directives[i]) {
					findings = append(findings, fmt.Sprintf("%s: %s", in.relPaths([]string{lib})[0], bad))
					break
				}
			}
		}

		if len(findings) > 0 {
			in.Report.Warn(fmt.Sprintf(
				"Expected %s crt linkage, but the following libs had invalid crt linkage:", expected),
				findings...)
			in.Report.Info("To inspect the lib files, use:\n    dumpbin.exe /directives mylibfile.lib")
			return domain.LintErrorDetected, nil
		}
		return domain.LintSuccess, nil
	}
}

// checkNoDllsInStaticBuild flags any dynamic module anywhere in a
// statically linked package.
func checkNoDllsInStaticBuild(_ context.Context, in *Input) (domain.LintStatus, error) {
	dlls := filterByExt(in.FS, in.FS.FilesRecursive(in.PackageDir), ".dll")
	if len(dlls) == 0 {
		return domain.LintSuccess, nil
	}

	in.Report.Warn("DLLs should not be present in a static build, but the following DLLs were found:",
		in.relPaths(dlls)...)
	return domain.LintErrorDetected, nil
}

// checkNoBinDirsInStaticBuild flags bin directories in a statically linked
// package.
func checkNoBinDirsInStaticBuild(_ context.Context, in *Input) (domain.LintStatus, error) {
	bin := in.Path("bin")
	debugBin := in.Path("debug", "bin")

	binExists := in.FS.Exists(bin)
	debugBinExists := in.FS.Exists(debugBin)
	if !binExists && !debugBinExists {
		return domain.LintSuccess, nil
	}

	if binExists {
		in.Report.Warn(fmt.Sprintf("There should be no bin/ directory in a static build, but %s is present.",
			filepath.ToSlash(bin)))
	}
	if debugBinExists {
		in.Report.Warn(fmt.Sprintf("There should be no debug/bin/ directory in a static build, but %s is present.",
			filepath.ToSlash(debugBin)))
	}
	in.Report.Info("If the creation of bin/ and/or debug/bin/ cannot be disabled, use this in the recipe to remove them\n" +
		"\n" +
		"    if(LIBRARY_LINKAGE STREQUAL static)\n" +
		"        file(REMOVE_RECURSE ${CURRENT_PACKAGES_DIR}/bin ${CURRENT_PACKAGES_DIR}/debug/bin)\n" +
		"    endif()")
	return domain.LintErrorDetected, nil
}
