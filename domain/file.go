package domain

// FileRecord is one entry of a room's shared file index.
type FileRecord struct {
	Name string
	Hash string
	Size int64
}
