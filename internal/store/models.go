package store

type Setting struct {
	Key   string
	Value string
}
