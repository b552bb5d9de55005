package models

import "strings"

// Router is a router login record as stored in the routers JSON collection.
// Optional fields are empty strings when absent from the JSON.
type Router struct {
	IP       string `json:"ip"`
	Brand    string `json:"brand"`
	Model    string `json:"model,omitempty"`
	Username string `json:"username,omitempty"`
	Password string `json:"password,omitempty"`
}

// Key returns the URL key of the router, which is its IP
// address with dots replaced by hyphens.
func (r Router) Key() string {
	return IPToKey(r.IP)
}

func IPToKey(ip string) string {
	return strings.ReplaceAll(ip, ".", "-")
}
