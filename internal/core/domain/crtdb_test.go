package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/packlint/internal/core/domain"
)

func TestOutdatedDynamicCrts_V120IsSmaller(t *testing.T) {
	historical := domain.OutdatedDynamicCrts(domain.ToolsetV120)

	for _, toolset := range []string{"", "v140", "v141", "v142", "v143", "unknown"} {
		t.Run("toolset_"+toolset, func(t *testing.T) {
			current := domain.OutdatedDynamicCrts(toolset)
			require.Len(t, current, len(historical)+4)

			// The current list must be a strict superset by name.
			names := make(map[string]bool, len(current))
			for _, crt := range current {
				names[crt.Name] = true
			}
			for _, crt := range historical {
				assert.True(t, names[crt.Name], "missing historical entry %s", crt.Name)
			}

			// The four additions are the v120 generation runtimes.
			for _, added := range []string{"msvcp120.dll", "msvcp120_clr0400.dll", "msvcr120.dll", "msvcr120_clr0400.dll"} {
				assert.True(t, names[added], "missing added entry %s", added)
			}
		})
	}
}

func TestOutdatedDynamicCrts_V120ExcludesOwnGeneration(t *testing.T) {
	historical := domain.OutdatedDynamicCrts(domain.ToolsetV120)

	for _, crt := range historical {
		assert.NotEqual(t, "msvcp120.dll", crt.Name)
		assert.NotEqual(t, "msvcr120.dll", crt.Name)
	}
}

func TestOutdatedCrt_MatchesDependents(t *testing.T) {
	tests := []struct {
		name       string
		dependents string
		wantMatch  string
	}{
		{
			name:       "exact name",
			dependents: "  Image has the following dependencies:\n    msvcr100.dll\n    KERNEL32.dll\n",
			wantMatch:  "msvcr100.dll",
		},
		{
			name:       "case insensitive",
			dependents: "    MSVCP110.DLL\n",
			wantMatch:  "msvcp110.dll",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			matched := ""
			for _, crt := range domain.OutdatedDynamicCrts("v143") {
				if crt.MatchesDependents(tt.dependents) {
					matched = crt.Name
					break
				}
			}
			assert.Equal(t, tt.wantMatch, matched)
		})
	}
}

func TestOutdatedCrt_NoMatchOnCleanDependents(t *testing.T) {
	dependents := "    KERNEL32.dll\n    VCRUNTIME140.dll\n    api-ms-win-crt-runtime-l1-1-0.dll\n"
	for _, crt := range domain.OutdatedDynamicCrts("v143") {
		assert.False(t, crt.MatchesDependents(dependents), "unexpected match for %s", crt.Name)
	}
}
