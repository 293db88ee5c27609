package service

import "github.com/morshues/msync/models"

type alwaysAllowedNetwork struct{}

// NewAlwaysAllowedNetwork returns the default NetworkChecker: every link is
// treated as unmetered. Deployments on metered links can substitute a checker
// backed by the platform's connectivity API.
func NewAlwaysAllowedNetwork() NetworkChecker {
	return alwaysAllowedNetwork{}
}

func (alwaysAllowedNetwork) Allowed(models.NetworkType) bool {
	return true
}
