package headless

import (
	"bytes"
	"context"

	"github.com/go-logr/logr"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/imamik/onboard/internal/config"
	"github.com/imamik/onboard/internal/identity"
	"github.com/imamik/onboard/internal/onboarding"
	"github.com/imamik/onboard/internal/provisioning"
	"github.com/imamik/onboard/internal/util/ptr"
)

type reviewSpy struct {
	calls [][]onboarding.ValidationResult
}

func (r *reviewSpy) ObserveReview(results []onboarding.ValidationResult) {
	r.calls = append(r.calls, results)
}

func validAnswers() *config.Answers {
	return &config.Answers{
		Provider: identity.AWSSSO,
		Project: config.ProjectAnswers{
			Name:        "payments-api",
			DisplayName: "Payments API",
			Description: "Handles card payments for the storefront",
			ProjectType: "api-service",
			Language:    "go",
			Framework:   "Gin",
		},
		Templates: []string{"infra-basic-vpc", "repo-react-starter"},
		Configuration: config.ConfigurationAnswers{
			Environment: "staging",
			DataStore:   "postgres",
			Budget:      ptr.Int(250),
			Tags:        map[string]string{"Team": "payments", "Project": ""},
		},
	}
}

var _ = Describe("Driver", func() {
	var (
		ctx    context.Context
		out    *bytes.Buffer
		store  *onboarding.Store
		spy    *reviewSpy
		opts   Options
		answer *config.Answers
	)

	BeforeEach(func() {
		ctx = context.Background()
		out = &bytes.Buffer{}
		store = onboarding.NewStore()
		spy = &reviewSpy{}
		answer = validAnswers()
		opts = Options{
			Authenticator: identity.NewAuthenticator(0),
			Runner:        provisioning.NewRunner(provisioning.Delays{}, logr.Discard()),
			Review:        spy,
			Out:           out,
		}
	})

	Context("with complete answers", func() {
		It("walks every step and completes the session", func() {
			st, err := Run(ctx, answer, store, opts)
			Expect(err).NotTo(HaveOccurred())

			By("ending on the completion step")
			Expect(st.CurrentStep).To(Equal(onboarding.StepComplete))
			Expect(st.IsComplete).To(BeTrue())
			Expect(st.Completion).NotTo(BeNil())
			Expect(st.Completion.RepositoryURL).To(Equal(provisioning.RepositoryURL))

			By("seeding owner and team from the identity")
			Expect(st.User).NotTo(BeNil())
			provider, _ := identity.Lookup(identity.AWSSSO)
			Expect(st.User.Provider).To(Equal(provider.Name))
			Expect(st.Config.Owner).To(Equal(st.User.Email))

			By("merging every step's inputs")
			Expect(st.Config.Name).To(Equal("payments-api"))
			Expect(st.Config.Environment).To(Equal(onboarding.EnvStaging))
			Expect(st.Config.Tags).To(Equal(map[string]string{"Team": "payments"}))
			Expect(st.SelectedTemplates).To(HaveLen(2))

			By("finishing every provisioning step")
			Expect(st.Provisioning).To(HaveLen(6))
			for _, s := range st.Provisioning {
				Expect(s.Status).To(Equal(onboarding.StatusCompleted))
				Expect(s.StartTime).NotTo(BeNil())
				Expect(s.EndTime).NotTo(BeNil())
			}
		})

		It("reports review findings once", func() {
			_, err := Run(ctx, answer, store, opts)
			Expect(err).NotTo(HaveOccurred())
			Expect(spy.calls).To(HaveLen(1))
			Expect(spy.calls[0]).To(BeEmpty())
		})

		It("prints each step heading and the completion payload", func() {
			_, err := Run(ctx, answer, store, opts)
			Expect(err).NotTo(HaveOccurred())

			text := out.String()
			Expect(text).To(ContainSubstring("Step 1 of 7"))
			Expect(text).To(ContainSubstring("Step 7 of 7"))
			Expect(text).To(ContainSubstring("Successfully authenticated via AWS SSO"))
			Expect(text).To(ContainSubstring("20 minutes"))
			Expect(text).To(ContainSubstring("All checks passed"))
			Expect(text).To(ContainSubstring("Finalize Setup"))
			Expect(text).To(ContainSubstring("100%"))
			Expect(text).To(ContainSubstring(provisioning.RepositoryURL))
		})

		It("surfaces review warnings without blocking", func() {
			answer.Configuration.Environment = "production"
			answer.Configuration.Budget = ptr.Int(5000)

			st, err := Run(ctx, answer, store, opts)
			Expect(err).NotTo(HaveOccurred())
			Expect(st.IsComplete).To(BeTrue())
			Expect(st.ValidationResults).To(HaveLen(2))
			Expect(out.String()).To(ContainSubstring("High budget detected"))
		})
	})

	Context("when a step is blocked", func() {
		It("stops on invalid project details", func() {
			answer.Project.Name = "Bad Name"

			st, err := Run(ctx, answer, store, opts)
			Expect(err).To(MatchError(ErrStepBlocked))
			Expect(err.Error()).To(HavePrefix("Project Details"))
			Expect(st.CurrentStep).To(Equal(onboarding.StepDetails))
			Expect(out.String()).To(ContainSubstring(onboarding.MsgNameInvalid))
		})

		It("stops when no template is selected", func() {
			answer.Templates = nil

			st, err := Run(ctx, answer, store, opts)
			Expect(err).To(MatchError(ErrStepBlocked))
			Expect(st.CurrentStep).To(Equal(onboarding.StepTemplates))
		})

		It("stops when configuration is incomplete", func() {
			answer.Configuration.DataStore = ""

			st, err := Run(ctx, answer, store, opts)
			Expect(err).To(MatchError(ErrStepBlocked))
			Expect(st.CurrentStep).To(Equal(onboarding.StepConfiguration))
		})

		It("rejects unknown templates", func() {
			answer.Templates = []string{"nope"}

			_, err := Run(ctx, answer, store, opts)
			Expect(err).To(MatchError(config.ErrUnknownTemplate))
		})
	})

	Context("when cancelled", func() {
		It("aborts the run without completing", func() {
			cctx, cancel := context.WithCancel(ctx)
			cancel()

			opts.Authenticator = nil
			st, err := Run(cctx, answer, store, opts)
			Expect(err).To(MatchError(context.Canceled))
			Expect(st.IsComplete).To(BeFalse())
		})
	})
})

var _ = Describe("Check", func() {
	It("passes complete answers", func() {
		res, err := Check(validAnswers())
		Expect(err).NotTo(HaveOccurred())
		Expect(res.OK()).To(BeTrue())
	})

	It("collects field errors and review errors", func() {
		a := validAnswers()
		a.Project.Name = ""
		a.Project.Language = ""
		a.Configuration.Environment = ""

		res, err := Check(a)
		Expect(err).NotTo(HaveOccurred())
		Expect(res.OK()).To(BeFalse())
		Expect(res.FieldNames()).To(Equal([]string{onboarding.FieldLanguage, onboarding.FieldName}))
		Expect(res.Fields[onboarding.FieldName]).To(Equal(onboarding.MsgNameRequired))

		errs, _ := onboarding.SplitResults(res.Review)
		Expect(errs).To(HaveLen(2))
	})

	It("prints a check result", func() {
		a := validAnswers()
		a.Project.Description = "short"
		res, err := Check(a)
		Expect(err).NotTo(HaveOccurred())

		out := &bytes.Buffer{}
		NewPrinter(out).PrintCheck(res)
		Expect(out.String()).To(ContainSubstring(onboarding.MsgDescriptionTooShort))
	})
})
