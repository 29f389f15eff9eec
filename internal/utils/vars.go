package utils

import "errors"

const DefaultBufferSize = 1024 * 1024 * 8 // 8MB buffer
const ArchiveExtension = ".zip"
const DefaultBaseDirName = "external"
const ToolUserAgent = "sdlfetch"

var (
	ErrPrecondition  = errors.New("precondition failed")
	ErrNetwork       = errors.New("network error")
	ErrArchive       = errors.New("archive error")
	ErrPostcondition = errors.New("postcondition failed")
)
