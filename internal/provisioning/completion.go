package provisioning

import "github.com/imamik/onboard/internal/onboarding"

// RepositoryURL is the address of the simulated repository.
const RepositoryURL = "https://github.com/company/my-awesome-project"

// Completion returns the fixed payload reported when every step has finished.
func Completion() onboarding.CompletionData {
	return onboarding.CompletionData{
		RepositoryURL: RepositoryURL,
		InfrastructureURLs: []string{
			"https://console.aws.amazon.com/cloudformation/home#/stacks/stackinfo?stackId=my-awesome-project-vpc",
			"https://console.aws.amazon.com/lambda/home#/functions/my-awesome-project-api",
		},
		AccessDetails: []string{
			"Repository: " + RepositoryURL,
			"API Gateway: https://api.myawesomeproject.com",
			"CloudWatch Logs: https://console.aws.amazon.com/cloudwatch/home#logGroups",
		},
		NextSteps: []string{
			"Clone the repository to your local machine",
			"Review the generated documentation in the README",
			"Configure your local development environment",
			"Run the initial tests to verify setup",
			"Begin development on your first feature",
		},
	}
}
