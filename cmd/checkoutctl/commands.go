package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"casamento_presentes/internal/domain/entities"
	"casamento_presentes/internal/infrastructure/config"
	"casamento_presentes/internal/infrastructure/payments"
	"casamento_presentes/internal/infrastructure/pixcode"
	"casamento_presentes/internal/usecase"
)

func installmentsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "installments [amount]",
		Short: "Print the installment table for an amount in reais",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			amount, err := entities.ParseCents(args[0])
			if err != nil {
				return err
			}
			if amount <= 0 {
				return errors.New("amount must be greater than zero")
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "PARCELAS\tVALOR\tTOTAL\tJUROS\tTAXA")
			for _, o := range usecase.ComputeInstallments(amount) {
				fmt.Fprintf(w, "%dx\t%s\t%s\t%s\t%.1f%%\n", o.Installments, o.InstallmentAmount.BRL(), o.TotalAmount.BRL(), o.TotalInterest.BRL(), o.InterestRate)
			}
			return w.Flush()
		},
	}
	return cmd
}

func classifyCmd() *cobra.Command {
	var status int
	var code string

	cmd := &cobra.Command{
		Use:   "classify [message]",
		Short: "Show how an error message is presented to the guest",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var err error = errors.New(strings.Join(args, " "))
			if status != 0 || code != "" {
				err = &payments.HTTPError{Status: status, Code: code, Message: err.Error()}
			}
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(usecase.ClassifyError(err))
		},
	}

	cmd.Flags().IntVarP(&status, "status", "s", 0, "HTTP status returned by the backend")
	cmd.Flags().StringVarP(&code, "code", "c", "", "Structured error code returned by the backend")

	return cmd
}

func pixPayloadCmd() *cobra.Command {
	var key, merchant, city, description string

	cmd := &cobra.Command{
		Use:   "pix-payload [amount]",
		Short: "Build a static PIX copia e cola code",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			amount, err := entities.ParseCents(args[0])
			if err != nil {
				return err
			}
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if key == "" {
				key = cfg.MockPixKey
			}
			if merchant == "" {
				merchant = cfg.MockPixMerchant
			}
			if city == "" {
				city = cfg.MockPixCity
			}

			payload, err := pixcode.BuildPayload(pixcode.Data{
				Key:          key,
				MerchantName: merchant,
				City:         city,
				Amount:       amount,
				Description:  description,
			})
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), payload)
			return nil
		},
	}

	cmd.Flags().StringVarP(&key, "key", "k", "", "PIX key (defaults to MOCK_PIX_KEY)")
	cmd.Flags().StringVarP(&merchant, "merchant", "m", "", "Merchant name (defaults to MOCK_PIX_MERCHANT_NAME)")
	cmd.Flags().StringVar(&city, "city", "", "Merchant city (defaults to MOCK_PIX_CITY)")
	cmd.Flags().StringVarP(&description, "description", "d", "", "Free text shown to the payer")

	return cmd
}

func probeCmd() *cobra.Command {
	var timeout time.Duration

	cmd := &cobra.Command{
		Use:   "probe [url...]",
		Short: "Find the first payment backend that answers",
		Long: `Tries each base URL with GET /api/payments and prints the first one
answering 2xx or 404. Without arguments API_BASE_URL and API_FALLBACK_URLS are used.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			candidates := args
			if len(candidates) == 0 {
				cfg, err := config.Load()
				if err != nil {
					return err
				}
				candidates = cfg.BackendCandidates()
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), timeout*time.Duration(len(candidates)+1))
			defer cancel()
			found, err := payments.ProbeBackend(ctx, &http.Client{Timeout: timeout}, candidates...)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), found)
			return nil
		},
	}

	cmd.Flags().DurationVarP(&timeout, "timeout", "t", 5*time.Second, "Timeout per candidate")

	return cmd
}
