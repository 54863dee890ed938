package services

import (
	portsrepo "github.com/kamp-org/kamp_backend/internal/core/ports/repositories"
	portssvc "github.com/kamp-org/kamp_backend/internal/core/ports/services"
	"github.com/kamp-org/kamp_backend/internal/platform/config"
	"github.com/kamp-org/kamp_backend/internal/utils"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, analytics *utils.PosthogClientWrapper) *portssvc.ServiceContainer {
	return &portssvc.ServiceContainer{
		User:        NewUserService(repos.UserRepo, repos.ProfileRepo),
		Token:       NewTokenService(cfg),
		GoogleOAuth: NewGoogleOAuthService(cfg),
		Project:     NewProjectService(repos.ProjectRepo, WithProjectAnalytics(analytics)),
		Application: NewApplicationService(
			repos.ApplicationRepo,
			repos.ProjectRepo,
			WithApplicationAnalytics(analytics),
		),
		Member: NewMemberService(repos.MemberRepo),
		Donation: NewDonationService(
			repos.DonationRepo,
			repos.ProjectRepo,
			WithDonationAnalytics(analytics),
		),
	}
}
