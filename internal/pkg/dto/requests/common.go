package requests

type Pagination struct {
	Page    int
	Limit   int
	Type    string
	Keyword string
}
