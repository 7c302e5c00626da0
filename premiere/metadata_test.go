// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Studiopipe Authors

package premiere

import (
	"testing"

	"github.com/studiopipe/go-premiere/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleBlob = "<premierePrivateProjectMetaData:shot>sh010</premierePrivateProjectMetaData:shot>\n" +
	"<premierePrivateProjectMetaData:artist>alice</premierePrivateProjectMetaData:artist>\n"

// ── metadataValue ────────────────────────────────────────────────────────────

func TestMetadataValue_Present(t *testing.T) {
	value, ok := metadataValue(sampleBlob, "artist")

	assert.True(t, ok)
	assert.Equal(t, "alice", value)
}

func TestMetadataValue_Absent(t *testing.T) {
	value, ok := metadataValue(sampleBlob, "status")

	assert.False(t, ok)
	assert.Empty(t, value)
}

func TestMetadataValue_EmptyBlob(t *testing.T) {
	_, ok := metadataValue("", "shot")

	assert.False(t, ok)
}

func TestMetadataValue_RegexCharactersInName(t *testing.T) {
	blob := "<premierePrivateProjectMetaData:Column.PropertyBool.Hide>true</premierePrivateProjectMetaData:Column.PropertyBool.Hide>\n"

	// The dots must match literally, not any character.
	_, ok := metadataValue(blob, "ColumnXPropertyBoolXHide")
	assert.False(t, ok)

	value, ok := metadataValue(blob, "Column.PropertyBool.Hide")
	assert.True(t, ok)
	assert.Equal(t, "true", value)
}

// ── patchMetadata ────────────────────────────────────────────────────────────

func TestPatchMetadata_RewritesExistingEntry(t *testing.T) {
	patched := patchMetadata(sampleBlob, "artist", "bob")

	value, ok := metadataValue(patched, "artist")
	require.True(t, ok)
	assert.Equal(t, "bob", value)

	// Other entries stay untouched.
	value, ok = metadataValue(patched, "shot")
	require.True(t, ok)
	assert.Equal(t, "sh010", value)
}

func TestPatchMetadata_SameValueLeavesBlobUnchanged(t *testing.T) {
	patched := patchMetadata(sampleBlob, "artist", "alice")

	assert.Equal(t, sampleBlob, patched)
}

func TestPatchMetadata_AbsentPropertyRepurposesFirstEntry(t *testing.T) {
	patched := patchMetadata(sampleBlob, "status", "approved")

	value, ok := metadataValue(patched, "status")
	require.True(t, ok)
	assert.Equal(t, "approved", value)

	// The first entry was overwritten; the second survives.
	_, ok = metadataValue(patched, "shot")
	assert.False(t, ok)
	value, ok = metadataValue(patched, "artist")
	require.True(t, ok)
	assert.Equal(t, "alice", value)
}

func TestPatchMetadata_NoEntriesIsNoOp(t *testing.T) {
	blob := "<xmp:other>unrelated</xmp:other>"

	patched := patchMetadata(blob, "status", "approved")

	assert.Equal(t, blob, patched)
}

func TestPatchMetadata_LiteralReplacementValue(t *testing.T) {
	// Regex replacement syntax in the value must not be expanded.
	patched := patchMetadata(sampleBlob, "artist", "$1${shot}")

	value, ok := metadataValue(patched, "artist")
	require.True(t, ok)
	assert.Equal(t, "$1${shot}", value)
}

// ── ParsePropertyType ────────────────────────────────────────────────────────

func TestParsePropertyType(t *testing.T) {
	tests := []struct {
		name string
		want models.PropertyType
	}{
		{"int", models.PropertyTypeInteger},
		{"integer", models.PropertyTypeInteger},
		{"INTEGER", models.PropertyTypeInteger},
		{"real", models.PropertyTypeReal},
		{"float", models.PropertyTypeReal},
		{"str", models.PropertyTypeString},
		{"String", models.PropertyTypeString},
		{"bool", models.PropertyTypeBoolean},
		{"Boolean", models.PropertyTypeBoolean},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParsePropertyType(tt.name)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParsePropertyType_Unsupported(t *testing.T) {
	_, err := ParsePropertyType("timecode")

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnsupportedPropertyType)
}
