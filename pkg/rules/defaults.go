package rules

// defaultEntries is the built-in rule table. It is static configuration:
// callers customize via Merge rather than mutating it.
var defaultEntries = map[string]Classification{
	// Documents
	".pdf":  {Category: "Documents", Subcategory: "PDFs"},
	".doc":  {Category: "Documents", Subcategory: "Word"},
	".docx": {Category: "Documents", Subcategory: "Word"},
	".odt":  {Category: "Documents", Subcategory: "Word"},
	".xls":  {Category: "Documents", Subcategory: "Spreadsheets"},
	".xlsx": {Category: "Documents", Subcategory: "Spreadsheets"},
	".csv":  {Category: "Documents", Subcategory: "Spreadsheets"},
	".ppt":  {Category: "Documents", Subcategory: "Presentations"},
	".pptx": {Category: "Documents", Subcategory: "Presentations"},
	".txt":  {Category: "Documents", Subcategory: "Text"},
	".md":   {Category: "Documents", Subcategory: "Text"},
	".rtf":  {Category: "Documents", Subcategory: "Text"},

	// Media
	".jpg":  {Category: "Media", Subcategory: "Images"},
	".jpeg": {Category: "Media", Subcategory: "Images"},
	".png":  {Category: "Media", Subcategory: "Images"},
	".gif":  {Category: "Media", Subcategory: "Images"},
	".bmp":  {Category: "Media", Subcategory: "Images"},
	".svg":  {Category: "Media", Subcategory: "Images"},
	".webp": {Category: "Media", Subcategory: "Images"},
	".heic": {Category: "Media", Subcategory: "Images"},
	".mp4":  {Category: "Media", Subcategory: "Video"},
	".mkv":  {Category: "Media", Subcategory: "Video"},
	".avi":  {Category: "Media", Subcategory: "Video"},
	".mov":  {Category: "Media", Subcategory: "Video"},
	".wmv":  {Category: "Media", Subcategory: "Video"},
	".mp3":  {Category: "Media", Subcategory: "Audio"},
	".wav":  {Category: "Media", Subcategory: "Audio"},
	".flac": {Category: "Media", Subcategory: "Audio"},
	".m4a":  {Category: "Media", Subcategory: "Audio"},
	".ogg":  {Category: "Media", Subcategory: "Audio"},

	// Archives
	".zip": {Category: "Archives", Subcategory: "Compressed"},
	".rar": {Category: "Archives", Subcategory: "Compressed"},
	".7z":  {Category: "Archives", Subcategory: "Compressed"},
	".tar": {Category: "Archives", Subcategory: "Compressed"},
	".gz":  {Category: "Archives", Subcategory: "Compressed"},
	".bz2": {Category: "Archives", Subcategory: "Compressed"},
	".iso": {Category: "Archives", Subcategory: "Disk Images"},

	// Code
	".go":   {Category: "Code", Subcategory: "Source"},
	".py":   {Category: "Code", Subcategory: "Source"},
	".js":   {Category: "Code", Subcategory: "Source"},
	".ts":   {Category: "Code", Subcategory: "Source"},
	".rb":   {Category: "Code", Subcategory: "Source"},
	".sh":   {Category: "Code", Subcategory: "Scripts"},
	".ps1":  {Category: "Code", Subcategory: "Scripts"},
	".bat":  {Category: "Code", Subcategory: "Scripts"},
	".json": {Category: "Code", Subcategory: "Data"},
	".yaml": {Category: "Code", Subcategory: "Data"},
	".yml":  {Category: "Code", Subcategory: "Data"},
	".xml":  {Category: "Code", Subcategory: "Data"},

	// Applications
	".exe": {Category: "Applications", Subcategory: "Installers"},
	".msi": {Category: "Applications", Subcategory: "Installers"},
	".dmg": {Category: "Applications", Subcategory: "Installers"},
	".deb": {Category: "Applications", Subcategory: "Installers"},
	".rpm": {Category: "Applications", Subcategory: "Installers"},

	// Fonts
	".ttf":  {Category: "Fonts"},
	".otf":  {Category: "Fonts"},
	".woff": {Category: "Fonts"},
}

// 🏭 Default returns the built-in rule table
func Default() *Table {
	t, err := New(defaultEntries)
	if err != nil {
		// defaultEntries is compile-time data; a bad entry is a programming error
		panic(err)
	}
	return t
}
