package http

import "net/http"

type authTransport struct {
	header    string
	value     string
	transport http.RoundTripper
}

func (t *authTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if t.value == "" {
		return t.transport.RoundTrip(req)
	}

	reqCopy := req.Clone(req.Context())
	reqCopy.Header.Set(t.header, t.value)

	return t.transport.RoundTrip(reqCopy)
}

// WithAuthToken sends "Authorization: Bearer <token>" when token is set
func WithAuthToken(token string) ClientOption {
	value := ""
	if token != "" {
		value = "Bearer " + token
	}
	return withAuthHeader("Authorization", value)
}

// WithAPIKey sends key in the given header when key is set
func WithAPIKey(header, key string) ClientOption {
	return withAuthHeader(header, key)
}

func withAuthHeader(header, value string) ClientOption {
	return WithTransport(func(rt http.RoundTripper) http.RoundTripper {
		return &authTransport{
			header:    header,
			value:     value,
			transport: rt,
		}
	})
}
