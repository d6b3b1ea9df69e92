package winget

// contentEntry is one item of the repository contents listing.
type contentEntry struct {
	Name string `json:"name"`
	Path string `json:"path"`
	Type string `json:"type"`
}

// localeManifest holds the fields read from <id>.locale.en-US.yaml.
type localeManifest struct {
	PackageIdentifier string `yaml:"PackageIdentifier"`
	PackageVersion    string `yaml:"PackageVersion"`
	PackageName       string `yaml:"PackageName"`
	Publisher         string `yaml:"Publisher"`
	PackageURL        string `yaml:"PackageUrl"`
	PublisherURL      string `yaml:"PublisherUrl"`
}

// installerManifest holds the fields read from <id>.installer.yaml.
type installerManifest struct {
	Installers []struct {
		Architecture string `yaml:"Architecture"`
		InstallerURL string `yaml:"InstallerUrl"`
	} `yaml:"Installers"`
}
