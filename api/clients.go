package api

import (
	"net"
	"net/http"
	"os"
	"time"

	"connectify-cli/auth"
	"connectify-cli/types"
)

const dialTimeout = 10 * time.Second
const fastReqTimeout = 30 * time.Second
const uploadReqTimeout = 5 * time.Minute

type Api struct{}

var cloudApiHost string

var Client types.ApiClient = (*Api)(nil)

func init() {
	if host := os.Getenv("CONNECTIFY_API_HOST"); host != "" {
		cloudApiHost = host
	} else if os.Getenv("CONNECTIFY_ENV") == "development" {
		cloudApiHost = "http://localhost:3000"
	} else {
		cloudApiHost = "https://api.connectify.social"
	}
}

func getApiHost() string {
	if auth.Current != nil && auth.Current.Host != "" {
		return auth.Current.Host
	}
	return cloudApiHost
}

func getApiBase() string {
	return getApiHost() + "/api/v1"
}

type authenticatedTransport struct {
	underlyingTransport http.RoundTripper
}

// RoundTrip executes a single HTTP transaction, attaching the session token
// header when a session exists. Unauthenticated requests go through as-is.
func (t *authenticatedTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	auth.SetAuthHeader(req)
	return t.underlyingTransport.RoundTrip(req)
}

var netDialer = &net.Dialer{
	Timeout: dialTimeout,
}

var authenticatedFastClient = &http.Client{
	Transport: &authenticatedTransport{
		underlyingTransport: &http.Transport{
			Dial: netDialer.Dial,
		},
	},
	Timeout: fastReqTimeout,
}

// image uploads can be slow on bad connections
var authenticatedUploadClient = &http.Client{
	Transport: &authenticatedTransport{
		underlyingTransport: &http.Transport{
			Dial: netDialer.Dial,
		},
	},
	Timeout: uploadReqTimeout,
}
