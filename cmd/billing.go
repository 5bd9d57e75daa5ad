package cmd

import (
	"github.com/bnema/carshare-cli/internal/adapters/render/view"
	"github.com/spf13/cobra"
)

func newBillingCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "billing",
		Short: "Look up billing records, invoices and receipts",
	}

	cmd.AddCommand(
		newBillingShowCmd(app),
		newBillingInvoiceCmd(app),
		newBillingReceiptCmd(app),
	)

	return cmd
}

// The billing id stays a raw string so an empty id is reported by the billing
// service rather than by flag parsing.
func bindBillingIDFlag(cmd *cobra.Command, id *string) {
	cmd.Flags().StringVar(id, "id", "", "Billing ID")
}

func newBillingShowCmd(app *app) *cobra.Command {
	var id string
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show billing details",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			billing, err := app.billing.Billing(cmd.Context(), id)
			if err != nil {
				return err
			}

			return writeOutput(cmd, app, asJSON, billing, view.Billing(billing))
		},
	}

	bindBillingIDFlag(cmd, &id)
	addJSONFlag(cmd, &asJSON)

	return cmd
}

func newBillingInvoiceCmd(app *app) *cobra.Command {
	var id string
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "invoice",
		Short: "Generate the invoice for a billing record",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			invoice, err := app.billing.Invoice(cmd.Context(), id)
			if err != nil {
				return err
			}

			return writeOutput(cmd, app, asJSON, invoice, view.Invoice(invoice))
		},
	}

	bindBillingIDFlag(cmd, &id)
	addJSONFlag(cmd, &asJSON)

	return cmd
}

func newBillingReceiptCmd(app *app) *cobra.Command {
	var id string
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "receipt",
		Short: "Generate the receipt for a billing record",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			receipt, err := app.billing.Receipt(cmd.Context(), id)
			if err != nil {
				return err
			}

			return writeOutput(cmd, app, asJSON, receipt, view.Receipt(receipt))
		},
	}

	bindBillingIDFlag(cmd, &id)
	addJSONFlag(cmd, &asJSON)

	return cmd
}
