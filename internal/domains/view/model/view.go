package model

// DateLayout - YYYY-MM-DD cho archive và single post
const DateLayout = "2006-01-02"

// HomeView - latest post + latest song. Zero value là "all-empty" view.
type HomeView struct {
	Title  string
	Text   string
	Author string

	SongTitle  string
	SongGroup  string
	SongImage  string
	SongAuthor string
}

// ArchiveItem - một dòng trong archive
type ArchiveItem struct {
	ID        int64
	Title     string
	Author    string
	CreatedAt string
}

// PostView - single post page
type PostView struct {
	ID        int64
	Title     string
	Text      string
	Author    string
	CreatedAt string
}
