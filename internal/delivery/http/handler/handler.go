package handler

import "net/url"

// unescapeParam decodes a percent-encoded path parameter, so searches like
// "huguenot%20tunnel" reach the use case as plain text.
func unescapeParam(raw string) (string, error) {
	return url.PathUnescape(raw)
}
