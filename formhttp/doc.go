// Package formhttp attaches encoded bodies and queries to HTTP requests.
//
//	req, err := formhttp.NewRequest(ctx, http.MethodPost, "https://example.com/login", nil)
//	form := formhttp.FormData{Value: creds}
//	err = formhttp.SetBody(req, form)
//	err = formhttp.SetQuery(req, formhttp.FormData{Value: page})
//
// SetBody only sets Content-Type when the request does not already carry
// one.  SetQuery appends to any query already present in the URL.
package formhttp
