package port

// FileWalker lists the files under a root directory that a scan should rank.
type FileWalker interface {
	Walk(root string) ([]FileInfo, error)
}

// FileInfo describes a file selected by a FileWalker.
type FileInfo struct {
	Path    string
	RelPath string
	Size    int64
}

// FileReader loads the text of a file.
type FileReader interface {
	ReadText(path string) (string, error)
}
