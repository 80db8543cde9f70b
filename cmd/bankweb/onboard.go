package main

import (
	"flag"
	"fmt"
	"mime"
	"os"
	"path/filepath"

	domainonb "github.com/imaginarybank/webcore/internal/domain/onboarding"
	"github.com/imaginarybank/webcore/internal/service"
)

// runOnboard drives the enrollment workflow end to end: intent, the
// two concurrent document uploads, KYC confirmation, and activation.
// With -resume and WORKFLOW_STORE=redis it picks up a checkpointed
// registration instead of starting a fresh one.
func runOnboard(ctx *commandContext, args []string) error {
	fs := flag.NewFlagSet("onboard", flag.ContinueOnError)
	email := fs.String("email", "", "contact email (required)")
	phone := fs.String("phone", "", "contact phone")
	nationalID := fs.String("national-id", "", "national id (required)")
	issueDate := fs.String("id-issue-date", "", "national id issue date, YYYY-MM-DD")
	fingerprint := fs.String("fingerprint", "", "fingerprint code")
	income := fs.Float64("income", 0, "declared monthly income")
	occupation := fs.String("occupation", "", "occupation type")
	idFront := fs.String("id-front", "", "path to the identity document image (required)")
	selfie := fs.String("selfie", "", "path to the selfie image (required)")
	fullName := fs.String("full-name", "", "full legal name (required)")
	tin := fs.String("tin", "", "tax identification number")
	birthDate := fs.String("birth-date", "", "birth date, YYYY-MM-DD")
	country := fs.String("country", "EC", "country code")
	resume := fs.String("resume", "", "registration id to resume")
	if err := fs.Parse(args); err != nil {
		return err
	}

	files, err := loadDocuments(map[domainonb.DocType]string{
		domainonb.DocTypeIDFront: *idFront,
		domainonb.DocTypeSelfie:  *selfie,
	})
	if err != nil {
		return err
	}

	var workflow *service.Workflow
	if *resume != "" {
		workflow, err = ctx.App.ResumeOnboarding(ctx.Ctx, *resume)
		if err != nil {
			return err
		}
	} else {
		workflow = ctx.App.NewOnboarding()
	}

	cfg := ctx.App.Config.Workflow
	contact := domainonb.ContactDetails{
		Channel:             cfg.Channel,
		Locale:              cfg.Locale,
		Email:               *email,
		Phone:               *phone,
		NationalID:          *nationalID,
		NationalIDIssueDate: *issueDate,
		FingerprintCode:     *fingerprint,
		MonthlyIncome:       *income,
		OccupationType:      *occupation,
		IDFrontContentType:  files[domainonb.DocTypeIDFront].ContentType,
		SelfieContentType:   files[domainonb.DocTypeSelfie].ContentType,
	}

	if workflow.State() == domainonb.StateCollecting {
		if err := workflow.StartIntent(ctx.Ctx, contact); err != nil {
			return err
		}
		fmt.Printf("registration %s: intent accepted\n", workflow.RegistrationID())
	}

	if workflow.State() == domainonb.StateIntentRequested {
		if err := workflow.UploadDocuments(ctx.Ctx, files); err != nil {
			return err
		}
		fmt.Printf("registration %s: documents uploaded\n", workflow.RegistrationID())
	}

	if workflow.State() == domainonb.StateUploading {
		if err := workflow.ConfirmKyc(ctx.Ctx); err != nil {
			return err
		}
		fmt.Printf("registration %s: KYC confirmed\n", workflow.RegistrationID())
	}

	result, err := workflow.Activate(ctx.Ctx, domainonb.ActivationDetails{
		FullName:      *fullName,
		Tin:           *tin,
		BirthDate:     *birthDate,
		Country:       *country,
		Email:         *email,
		Phone:         *phone,
		AcceptedTerms: true,
	})
	if err != nil {
		return err
	}

	fmt.Printf("registration %s: activated\n", workflow.RegistrationID())
	return printJSON(result)
}

func loadDocuments(paths map[domainonb.DocType]string) (map[domainonb.DocType]domainonb.File, error) {
	files := make(map[domainonb.DocType]domainonb.File, len(paths))
	for dt, path := range paths {
		if path == "" {
			return nil, fmt.Errorf("missing file for %s", dt)
		}
		content, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", dt, err)
		}
		contentType := mime.TypeByExtension(filepath.Ext(path))
		if contentType == "" {
			contentType = "application/octet-stream"
		}
		files[dt] = domainonb.File{
			Name:        filepath.Base(path),
			Size:        int64(len(content)),
			ContentType: contentType,
			Content:     content,
		}
	}
	return files, nil
}
