package assets

// DefaultStyle styles course previews unless another name is given.
const DefaultStyle = "course"

var defaultLoader = NewEmbeddedLoader()

// LoadStyle loads a CSS file by name using the default embedded loader.
func LoadStyle(name string) (string, error) {
	return defaultLoader.LoadStyle(name)
}
