package cfn

import "strconv"

// Tag is the key/value pair shared by taggable resource types.
type Tag struct {
	Key   string
	Value string
}

// NewTag creates a tag.
func NewTag(key, value string) Tag {
	return Tag{Key: key, Value: value}
}

// RenderProperties returns the tag in wire form.
func (t Tag) RenderProperties() map[string]any {
	return map[string]any{"Key": t.Key, "Value": t.Value}
}

func (t Tag) String() string {
	return "Tag(Key=" + strconv.Quote(t.Key) + ", Value=" + strconv.Quote(t.Value) + ")"
}
