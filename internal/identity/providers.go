package identity

import "github.com/imamik/onboard/internal/onboarding"

// Provider ids.
const (
	GitHub          = "github"
	AWSSSO          = "aws-sso"
	Cognito         = "cognito"
	AzureAD         = "azure-ad"
	GoogleWorkspace = "google-workspace"
	SAML            = "saml"
)

// Provider is one selectable identity provider together with the identity it
// resolves to.
type Provider struct {
	ID          string
	Name        string
	Description string
	User        onboarding.User
}

// Providers lists the identity providers in display order.
var Providers = []Provider{
	{
		ID:          GitHub,
		Name:        "GitHub",
		Description: "Developer authentication via GitHub OAuth",
		User: onboarding.User{
			ID: "1", Name: "Alex Chen", Email: "alex.chen@company.com",
			Role: "Senior Developer", Team: "Platform Engineering", Provider: "GitHub",
		},
	},
	{
		ID:          AWSSSO,
		Name:        "AWS SSO",
		Description: "AWS Identity Center (formerly AWS SSO)",
		User: onboarding.User{
			ID: "2", Name: "Sarah Johnson", Email: "sarah.johnson@company.com",
			Role: "DevOps Engineer", Team: "Infrastructure", Provider: "AWS SSO",
		},
	},
	{
		ID:          Cognito,
		Name:        "Amazon Cognito",
		Description: "AWS managed user authentication",
		User: onboarding.User{
			ID: "3", Name: "Michael Rodriguez", Email: "michael.rodriguez@company.com",
			Role: "Full Stack Developer", Team: "Product Engineering", Provider: "Amazon Cognito",
		},
	},
	{
		ID:          AzureAD,
		Name:        "Azure AD",
		Description: "Microsoft Azure Active Directory",
		User: onboarding.User{
			ID: "4", Name: "Emily Watson", Email: "emily.watson@company.com",
			Role: "Cloud Architect", Team: "Enterprise Architecture", Provider: "Azure AD",
		},
	},
	{
		ID:          GoogleWorkspace,
		Name:        "Google Workspace",
		Description: "Google Workspace SSO",
		User: onboarding.User{
			ID: "5", Name: "David Kim", Email: "david.kim@company.com",
			Role: "Tech Lead", Team: "Mobile Development", Provider: "Google Workspace",
		},
	},
	{
		ID:          SAML,
		Name:        "SAML 2.0",
		Description: "Enterprise SAML identity provider",
		User: onboarding.User{
			ID: "6", Name: "Lisa Thompson", Email: "lisa.thompson@company.com",
			Role: "Security Engineer", Team: "Information Security", Provider: "SAML 2.0",
		},
	},
}

// Lookup returns the provider with id. Unknown ids fall back to GitHub; ok
// reports whether id was known.
func Lookup(id string) (p Provider, ok bool) {
	for _, p := range Providers {
		if p.ID == id {
			return p, true
		}
	}
	return Providers[0], false
}

// IDs returns every provider id in display order.
func IDs() []string {
	ids := make([]string, len(Providers))
	for i, p := range Providers {
		ids[i] = p.ID
	}
	return ids
}
