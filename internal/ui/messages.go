package ui

import (
	"bookfinder/internal/catalog"
)

// searchResultMsg carries the outcome of one catalog request
type searchResultMsg struct {
	query string
	page  int
	resp  *catalog.SearchResponse
	err   error
}

// detailOpenedMsg reports the outcome of handing a detail URL to the opener
type detailOpenedMsg struct {
	url string
	err error
}

// helpPagerMsg contains the result of a help pager command
type helpPagerMsg struct {
	err error
}
