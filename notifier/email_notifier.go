package notifier

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/ses/types"

	"github.com/Jazyell94/delivery-system/models"
)

// SendNewOrderEmail mails the store a copy of a freshly placed order via SES.
// It is a no-op when AWS_SENDER_ADDRESS or STORE_NOTIFY_ADDRESS is not
// configured. Callers run it in a goroutine; like the WebSocket broadcast it
// is best-effort and must never affect the checkout itself.
func SendNewOrderEmail(ctx context.Context, cliente models.Cliente, total float64) error {
	sender := os.Getenv("AWS_SENDER_ADDRESS")
	recipient := os.Getenv("STORE_NOTIFY_ADDRESS")
	if sender == "" || recipient == "" {
		return nil
	}

	region := os.Getenv("AWS_REGION")
	if region == "" {
		region = "us-east-1"
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			os.Getenv("AWS_ACCESS_KEY_ID"), os.Getenv("AWS_SECRET_ACCESS_KEY"), "")),
	)
	if err != nil {
		return fmt.Errorf("carregar configuração AWS: %w", err)
	}

	client := ses.NewFromConfig(awsCfg)

	var itens []string
	for _, p := range cliente.Produtos {
		itens = append(itens, fmt.Sprintf("%s %dx (R$ %.2f)", p.ProdutoID, p.Quantidade, p.Preco))
	}

	troco := 0.0
	if cliente.Troco != nil {
		troco = *cliente.Troco
	}

	subject := fmt.Sprintf("Novo pedido #%s - %s", cliente.Ref, cliente.Nome)
	bodyText := fmt.Sprintf(
		"Novo pedido recebido.\n\n"+
			"Referência: %s\nCliente: %s\nEndereço: %s\n\n"+
			"Itens:\n%s\n\n"+
			"Total: R$ %.2f\nPagamento: %s\nTroco: R$ %.2f\n",
		cliente.Ref, cliente.Nome, cliente.Endereco,
		strings.Join(itens, "\n"), total, cliente.FormaPagamento, troco)

	input := &ses.SendEmailInput{
		Source: aws.String(sender),
		Destination: &types.Destination{
			ToAddresses: []string{recipient},
		},
		Message: &types.Message{
			Subject: &types.Content{
				Charset: aws.String("UTF-8"),
				Data:    aws.String(subject),
			},
			Body: &types.Body{
				Text: &types.Content{
					Charset: aws.String("UTF-8"),
					Data:    aws.String(bodyText),
				},
			},
		},
	}

	if _, err := client.SendEmail(ctx, input); err != nil {
		return fmt.Errorf("enviar e-mail de novo pedido: %w", err)
	}
	return nil
}
