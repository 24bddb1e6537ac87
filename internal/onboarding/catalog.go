package onboarding

// Choice is one entry of a fixed option list.
type Choice struct {
	Value       string
	Label       string
	Description string
}

// ProjectTypes lists the selectable project types.
var ProjectTypes = []Choice{
	{Value: string(ProjectWebApp), Label: "Web Application", Description: "Frontend or full-stack web application"},
	{Value: string(ProjectAPIService), Label: "API Service", Description: "RESTful or GraphQL API service"},
	{Value: string(ProjectMobileApp), Label: "Mobile App", Description: "iOS, Android, or cross-platform mobile app"},
	{Value: string(ProjectDataPipeline), Label: "Data Pipeline", Description: "ETL, streaming, or batch data processing"},
	{Value: string(ProjectMLModel), Label: "ML Model", Description: "Machine learning model or AI service"},
}

// Languages lists the selectable primary languages.
var Languages = []Choice{
	{Value: string(LangTypeScript), Label: "TypeScript"},
	{Value: string(LangPython), Label: "Python"},
	{Value: string(LangJava), Label: "Java"},
	{Value: string(LangGo), Label: "Go"},
	{Value: string(LangRust), Label: "Rust"},
}

// Frameworks maps each language to the frameworks offered for it.
var Frameworks = map[Language][]string{
	LangTypeScript: {"React", "Next.js", "Vue.js", "Angular", "Express.js", "Nest.js"},
	LangPython:     {"FastAPI", "Django", "Flask", "Streamlit", "Jupyter"},
	LangJava:       {"Spring Boot", "Quarkus", "Micronaut"},
	LangGo:         {"Gin", "Echo", "Fiber"},
	LangRust:       {"Actix", "Rocket", "Axum"},
}

// Environments lists the selectable environments.
var Environments = []Choice{
	{Value: string(EnvDevelopment), Label: "Development", Description: "For development and testing"},
	{Value: string(EnvStaging), Label: "Staging", Description: "Pre-production environment"},
	{Value: string(EnvProduction), Label: "Production", Description: "Live production environment"},
}

// DataStores lists the selectable data stores.
var DataStores = []Choice{
	{Value: string(StoreNone), Label: "None", Description: "No database required"},
	{Value: string(StorePostgres), Label: "PostgreSQL", Description: "Relational database"},
	{Value: string(StoreMongoDB), Label: "MongoDB", Description: "Document database"},
	{Value: string(StoreRedis), Label: "Redis", Description: "In-memory cache"},
	{Value: string(StoreDynamoDB), Label: "DynamoDB", Description: "NoSQL database"},
}

// ComplianceOptions lists the selectable compliance regimes.
var ComplianceOptions = []Choice{
	{Value: "gdpr", Label: "GDPR", Description: "General Data Protection Regulation"},
	{Value: "hipaa", Label: "HIPAA", Description: "Health Insurance Portability and Accountability Act"},
	{Value: "sox", Label: "SOX", Description: "Sarbanes-Oxley Act"},
	{Value: "pci-dss", Label: "PCI DSS", Description: "Payment Card Industry Data Security Standard"},
}

// Resource tag keys captured by the Configuration step.
const (
	TagCostCenter  = "CostCenter"
	TagEnvironment = "Environment"
	TagProject     = "Project"
	TagTeam        = "Team"
)

// TagKeys lists the resource tags in display order.
var TagKeys = []string{TagCostCenter, TagEnvironment, TagProject, TagTeam}

// Templates is the static template catalog.
var Templates = []Template{
	{
		ID:            "infra-basic-vpc",
		Name:          "Basic VPC Infrastructure",
		Description:   "Standard VPC setup with public/private subnets, NAT gateway, and security groups",
		Type:          TemplateInfrastructure,
		Category:      "Networking",
		Technologies:  []string{"AWS VPC", "CloudFormation", "NAT Gateway"},
		Complexity:    ComplexitySimple,
		EstimatedTime: "15 minutes",
		Resources:     []string{"VPC", "Subnets", "Internet Gateway", "NAT Gateway", "Route Tables", "Security Groups"},
	},
	{
		ID:            "infra-serverless",
		Name:          "Serverless Application Stack",
		Description:   "Complete serverless infrastructure with Lambda, API Gateway, and DynamoDB",
		Type:          TemplateInfrastructure,
		Category:      "Serverless",
		Technologies:  []string{"AWS Lambda", "API Gateway", "DynamoDB", "CloudWatch"},
		Complexity:    ComplexityIntermediate,
		EstimatedTime: "25 minutes",
		Resources:     []string{"Lambda Functions", "API Gateway", "DynamoDB Table", "IAM Roles", "CloudWatch Logs"},
	},
	{
		ID:            "repo-react-starter",
		Name:          "React TypeScript Starter",
		Description:   "Modern React application with TypeScript, Tailwind CSS, and testing setup",
		Type:          TemplateRepository,
		Category:      "Frontend",
		Technologies:  []string{"React", "TypeScript", "Tailwind CSS", "Vite", "Jest"},
		Complexity:    ComplexitySimple,
		EstimatedTime: "5 minutes",
		Resources:     []string{"Component Library", "CI/CD Pipeline", "Testing Framework", "Documentation"},
	},
	{
		ID:            "repo-api-fastapi",
		Name:          "FastAPI REST API",
		Description:   "Production-ready FastAPI application with authentication, database, and documentation",
		Type:          TemplateRepository,
		Category:      "Backend",
		Technologies:  []string{"FastAPI", "Python", "PostgreSQL", "Docker", "Pytest"},
		Complexity:    ComplexityIntermediate,
		EstimatedTime: "10 minutes",
		Resources:     []string{"API Endpoints", "Authentication", "Database Models", "Docker Setup", "API Documentation"},
	},
	{
		ID:            "infra-monitoring",
		Name:          "Observability Stack",
		Description:   "Comprehensive monitoring with CloudWatch, X-Ray, and alerting",
		Type:          TemplateInfrastructure,
		Category:      "Monitoring",
		Technologies:  []string{"CloudWatch", "X-Ray", "SNS", "CloudTrail"},
		Complexity:    ComplexityAdvanced,
		EstimatedTime: "30 minutes",
		Resources:     []string{"CloudWatch Dashboards", "Alarms", "X-Ray Tracing", "Log Groups", "SNS Topics"},
	},
	{
		ID:            "repo-cicd-pipeline",
		Name:          "CI/CD Pipeline Template",
		Description:   "GitHub Actions workflow with automated testing, building, and deployment",
		Type:          TemplateRepository,
		Category:      "DevOps",
		Technologies:  []string{"GitHub Actions", "Docker", "AWS CodeDeploy", "Terraform"},
		Complexity:    ComplexityAdvanced,
		EstimatedTime: "20 minutes",
		Resources:     []string{"GitHub Workflows", "Build Scripts", "Deployment Configs", "Quality Gates"},
	},
}

// TemplateByID looks up a catalog template.
func TemplateByID(id string) (Template, bool) {
	for _, t := range Templates {
		if t.ID == id {
			return t, true
		}
	}
	return Template{}, false
}

// ChoiceLabel returns the label for value in choices, or value itself when it
// is not listed.
func ChoiceLabel(choices []Choice, value string) string {
	for _, c := range choices {
		if c.Value == value {
			return c.Label
		}
	}
	return value
}

// HasChoice reports whether value is one of choices.
func HasChoice(choices []Choice, value string) bool {
	for _, c := range choices {
		if c.Value == value {
			return true
		}
	}
	return false
}
