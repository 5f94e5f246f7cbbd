package headerregistry

// Predefined default header sets

// BrowserDefaults returns defaults mimicking a desktop browser. Some servers
// vary their response on a browser-style Accept, so this set is opt-in
// rather than built in.
func BrowserDefaults() []HeaderDefault {
	return []HeaderDefault{
		{
			Name:     "Accept",
			Values:   []string{"text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8"},
			Override: true,
		},
		{
			Name:     "Accept-Encoding",
			Values:   []string{DefaultAcceptEncoding},
			Override: true,
		},
		{
			Name:     "Accept-Language",
			Values:   []string{"en-US,en;q=0.9"},
			Override: true,
		},
		{
			Name:     "User-Agent",
			Values:   []string{DefaultUserAgent},
			Override: true,
		},
	}
}

// JSONAPIDefaults returns defaults for clients talking to JSON APIs.
func JSONAPIDefaults() []HeaderDefault {
	return []HeaderDefault{
		{
			Name:     "Accept",
			Values:   []string{"application/json"},
			Override: true,
		},
		{
			Name:     "Accept-Encoding",
			Values:   []string{DefaultAcceptEncoding},
			Override: true,
		},
	}
}

// TracingDefaults returns correlation headers commonly expected by gateways.
// The request ID is generated once per registry construction; rotate it with
// Set when a fresh one is needed.
func TracingDefaults() []HeaderDefault {
	return []HeaderDefault{
		{
			Name:     "X-Request-ID",
			Values:   []string{NewRequestID()},
			Override: true,
		},
	}
}
