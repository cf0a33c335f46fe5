package main

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/techconsult/internal/domain/lead"
	"github.com/alexisbeaulieu97/techconsult/internal/ports"
	"github.com/alexisbeaulieu97/techconsult/internal/submission"
	tcerrors "github.com/alexisbeaulieu97/techconsult/pkg/errors"
)

type requestOptions struct {
	name        string
	email       string
	company     string
	service     string
	description string
}

// flagForField names the CLI flag that fills each form field.
var flagForField = map[lead.Field]string{
	lead.FieldName:        "name",
	lead.FieldEmail:       "email",
	lead.FieldCompany:     "company",
	lead.FieldServiceType: "service",
	lead.FieldDescription: "description",
}

func newRequestCmd(app *AppContext) *cobra.Command {
	opts := &requestOptions{}

	cmd := &cobra.Command{
		Use:   "request",
		Short: "Submit an AI agent workflow request without the interactive form",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, logger := app.CommandContext(cmd, "command.request")
			logger.Info(ctx, "submitting request", "service_type", opts.service)
			err := runRequest(ctx, cmd, logger, app.SubmissionService(), opts)
			if err != nil {
				logger.Error(ctx, "request command failed", "error", err)
			}
			return err
		},
	}

	cmd.Flags().StringVar(&opts.name, "name", "", "Full name")
	cmd.Flags().StringVar(&opts.email, "email", "", "Email address")
	cmd.Flags().StringVar(&opts.company, "company", "", "Company name")
	cmd.Flags().StringVar(&opts.service, "service", "", "Service type: cloud, security, analytics, infrastructure, custom")
	cmd.Flags().StringVar(&opts.description, "description", "", "Project requirements and goals")

	return cmd
}

func runRequest(ctx context.Context, cmd *cobra.Command, logger ports.Logger, svc submission.Service, opts *requestOptions) error {
	service := opts.service
	if parsed, err := lead.ParseServiceType(service); err == nil {
		service = parsed.String()
	}

	form := lead.NewForm()
	values := map[lead.Field]string{
		lead.FieldName:        opts.name,
		lead.FieldEmail:       opts.email,
		lead.FieldCompany:     opts.company,
		lead.FieldServiceType: service,
		lead.FieldDescription: opts.description,
	}
	for _, field := range lead.Fields() {
		if err := form.SetField(field, values[field]); err != nil {
			return fmt.Errorf("fill %s: %w", field.Key(), err)
		}
	}

	data, err := form.BeginSubmit()
	if err != nil {
		var ve *tcerrors.ValidationError
		if errors.As(err, &ve) {
			flag := ve.Field
			if field, ok := lead.FieldForKey(ve.Field); ok {
				flag = flagForField[field]
			}
			return newCommandError("submit request", fmt.Sprintf("checking --%s", flag), errors.New(ve.Message), requestSuggestion(flag))
		}
		return newCommandError("submit request", "validating the form", err, "Check the flag values and retry.")
	}

	ack, err := svc.Submit(ctx, data)
	if err != nil {
		_ = form.Fail(err)
		logger.Warn(ctx, "submission failed", "error", err)
		return newCommandError("submit request", "sending the request", errors.New(form.Status().Message), "Wait a moment and run the command again.")
	}
	if err := form.Complete(ack); err != nil {
		return fmt.Errorf("record submission: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "Request Submitted Successfully!")
	fmt.Fprintln(out, "Our team will analyze your requirements and get back to you shortly.")
	fmt.Fprintf(out, "Reference: %s\n", ack.Reference)
	return nil
}

func requestSuggestion(flag string) string {
	if flag == "service" {
		var types []string
		for _, t := range lead.ServiceTypes() {
			types = append(types, t.String())
		}
		return fmt.Sprintf("Pass --service with one of: %s.", strings.Join(types, ", "))
	}
	if flag == "email" {
		return "Pass --email with an address such as name@example.com."
	}
	return fmt.Sprintf("Pass a non-empty --%s.", flag)
}
