package main

type uiState struct {
	mode        mode
	noticeMsg   string
	noticeLevel noticeLevel
	noticeSeq   int

	// mouse drag tracking for zoom-to-selection, in wave columns
	dragging  bool
	dragStart int
	dragEnd   int
}
