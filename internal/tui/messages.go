package tui

type copiedMsg struct {
	err error
}

type noteExpiredMsg struct{}

type openErrMsg struct {
	err error
}
