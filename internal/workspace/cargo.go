package workspace

import "github.com/BurntSushi/toml"

type cargoManifest struct {
	Package struct {
		Name string `toml:"name"`
	} `toml:"package"`
}

// packageName reads the crate name from a Cargo.toml manifest. A missing or
// malformed manifest falls back to the directory name.
func packageName(path, fallback string) string {
	var m cargoManifest
	if _, err := toml.DecodeFile(path, &m); err != nil || m.Package.Name == "" {
		return fallback
	}
	return m.Package.Name
}
