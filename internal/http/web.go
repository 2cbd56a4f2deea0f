package http

import _ "embed"

//go:embed web/index.html
var chatPage []byte
