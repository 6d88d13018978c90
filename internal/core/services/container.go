package services

import (
	portsrepo "github.com/tallmate/trust-circle/internal/core/ports/repositories"
	portssvc "github.com/tallmate/trust-circle/internal/core/ports/services"
)

// NewServiceContainer wires every service to its repositories.
func NewServiceContainer(repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	return &portssvc.ServiceContainer{
		Circle: NewCircleService(repos.CircleRepo),
	}
}
