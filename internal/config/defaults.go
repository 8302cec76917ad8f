package config

const (
	defaultLibraryDir   = "~/books"
	defaultMagazineDir  = "~/magazines"
	defaultLogDir       = "~/.local/share/librarian/logs"
	defaultDatabasePath = "~/.local/share/librarian/librarian.db"

	defaultBookTypes = "epub, mobi, pdf"
	defaultMagTypes  = "pdf"

	defaultMagDestFolder = "_Magazines/$Title/$IssueDate"
	defaultMagDestFile   = "$IssueDate - $Title"
	defaultIssueNouns    = "issue, iss, no, nr, #, n"
	defaultVolumeNouns   = "vol, volume"
	defaultDateLanguage  = "en"

	defaultNameRatio    = 90
	defaultNamePartial  = 95
	defaultNamePartName = 95
	defaultNoSplitList  = "the truth about, a curious guide to, revenge of the"

	defaultNamePostfixes = "snr, jnr, jr, sr, phd"

	defaultLogFormat = "console"
	defaultLogLevel  = "info"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			LibraryDir:   defaultLibraryDir,
			MagazineDir:  defaultMagazineDir,
			LogDir:       defaultLogDir,
			DatabasePath: defaultDatabasePath,
		},
		Scanning: Scanning{
			BookTypes: defaultBookTypes,
			MagTypes:  defaultMagTypes,
		},
		Magazines: Magazines{
			DestFolder:   defaultMagDestFolder,
			DestFile:     defaultMagDestFile,
			IssueNouns:   defaultIssueNouns,
			VolumeNouns:  defaultVolumeNouns,
			DateLanguage: defaultDateLanguage,
		},
		Matching: Matching{
			NameRatio:     defaultNameRatio,
			NamePartial:   defaultNamePartial,
			NamePartName:  defaultNamePartName,
			NoSplitTitles: defaultNoSplitList,
		},
		Authors: Authors{
			NamePostfixes: defaultNamePostfixes,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
