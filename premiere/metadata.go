package premiere

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/studiopipe/go-premiere/models"
)

// The host stores custom project metadata as an XMP text fragment in
// which a property only ever appears as a tag pair once it has been
// explicitly set:
//
//	<premierePrivateProjectMetaData:myprop>test</premierePrivateProjectMetaData:myprop>
//
// The schema behind the blob cannot be queried at runtime, so the
// functions below patch the text with regular expressions instead of
// parsing it. This is deliberately best-effort: it cannot tell an
// unset property from one set to empty, and it cannot add a property
// to a blob that contains no entries at all.
const metadataNS = "premierePrivateProjectMetaData"

// anyMetadataEntry matches the first property tag pair in a blob,
// whatever its name.
var anyMetadataEntry = regexp.MustCompile(`<` + metadataNS + `:[^<]+>(.*)</` + metadataNS + `:.*>`)

func metadataEntryPattern(property string) *regexp.Regexp {
	name := regexp.QuoteMeta(property)
	return regexp.MustCompile(`<` + metadataNS + `:` + name + `>(.*)</` + metadataNS + `:` + name + `>`)
}

func metadataEntry(property, value string) string {
	return fmt.Sprintf("<%s:%s>%s</%s:%s>", metadataNS, property, value, metadataNS, property)
}

// metadataValue extracts the value of property from the blob. ok is
// false when no tag pair for the property exists.
func metadataValue(blob, property string) (string, bool) {
	m := metadataEntryPattern(property).FindStringSubmatch(blob)
	if m == nil {
		return "", false
	}
	return m[1], true
}

// patchMetadata returns blob with property set to value.
//
// An existing tag pair is rewritten in place. When the property has no
// entry yet, the first entry of any other property is overwritten with
// the new tag pair; the host reconciles the schema because the write
// names the intended property. When the blob contains no entries at
// all there is nothing to patch over and the blob is returned
// unchanged.
func patchMetadata(blob, property, value string) string {
	entry := metadataEntry(property, value)

	pattern := metadataEntryPattern(property)
	if pattern.MatchString(blob) {
		return pattern.ReplaceAllLiteralString(blob, entry)
	}

	loc := anyMetadataEntry.FindStringIndex(blob)
	if loc == nil {
		return blob
	}
	return blob[:loc[0]] + entry + blob[loc[1]:]
}

// ParsePropertyType maps a property type name to the host's numeric
// value-type code. Matching is case-insensitive and accepts the
// synonyms int/integer, real/float, str/string and bool/boolean.
func ParsePropertyType(name string) (models.PropertyType, error) {
	switch strings.ToLower(name) {
	case "int", "integer":
		return models.PropertyTypeInteger, nil
	case "real", "float":
		return models.PropertyTypeReal, nil
	case "str", "string":
		return models.PropertyTypeString, nil
	case "bool", "boolean":
		return models.PropertyTypeBoolean, nil
	default:
		return 0, fmt.Errorf("%w: %s", ErrUnsupportedPropertyType, name)
	}
}
