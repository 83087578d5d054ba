package structs

// Crumb is the anti-CSRF token pair issued by the server's crumb issuer.
//
// CrumbRequestField names the request header the token must be sent under,
// the server picks this (typically "Jenkins-Crumb").
type Crumb struct {
	CrumbRequestField string `json:"crumbRequestField"`
	Crumb             string `json:"crumb"`
}
