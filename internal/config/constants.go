package config

// Application constants
const (
	AppName    = "classmate"
	AppVersion = "1.0.0"

	// Roster defaults
	DefaultIdentityColumn = "이름"
	DefaultSkipColumns    = 1
	RosterExtension       = ".csv"

	// Report defaults
	DefaultOutputBaseName = "겹강목록"
	DefaultBanner         = "[VESS 5기] 당신의 겹강을 찾아드립니다"
	TextExtension         = ".txt"
	WorkbookExtension     = ".xlsx"
	CSVExtension          = ".csv"
	WorkbookSheetName     = "겹강목록"
)
