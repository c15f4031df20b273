package publishers

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/aws/aws-sdk-go-v2/service/sqs/types"
)

type sqsClient interface {
	SendMessage(ctx context.Context, params *sqs.SendMessageInput, optFns ...func(*sqs.Options)) (*sqs.SendMessageOutput, error)
}

// queuePublisher sends each event as one SQS message. On FIFO queues the
// query ID is the message group, so changes to one query stay ordered while
// different queries are delivered independently.
type queuePublisher struct {
	id       string
	queueURL string
	fifo     bool
	client   sqsClient
	log      Logger
}

func newSQSPublisher(ctx context.Context, cfg PublisherConfig, log Logger) (Publisher, error) {
	if cfg.SQS == nil {
		return nil, fmt.Errorf("publisher %q missing sqs configuration", cfg.ID)
	}
	if ctx == nil {
		ctx = context.Background()
	}
	awsCfg, err := loadAWSConfig(ctx, cfg.SQS.Region, cfg.SQS.Credentials)
	if err != nil {
		return nil, err
	}
	return newQueuePublisher(cfg.ID, cfg.SQS.QueueURL, sqs.NewFromConfig(awsCfg), log), nil
}

func newQueuePublisher(id, queueURL string, client sqsClient, log Logger) *queuePublisher {
	return &queuePublisher{
		id:       id,
		queueURL: queueURL,
		fifo:     strings.HasSuffix(queueURL, ".fifo"),
		client:   client,
		log:      orDiscard(log),
	}
}

func (q *queuePublisher) ID() string   { return q.id }
func (q *queuePublisher) Type() string { return TypeSQS }

func (q *queuePublisher) Publish(ctx context.Context, evt Event) error {
	payload, err := json.Marshal(evt)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}

	input := &sqs.SendMessageInput{
		QueueUrl:          aws.String(q.queueURL),
		MessageBody:       aws.String(string(payload)),
		MessageAttributes: sqsAttributes(evt),
	}
	if q.fifo {
		input.MessageGroupId = aws.String(evt.QueryID)
		input.MessageDeduplicationId = aws.String(evt.ID)
	}

	out, err := q.client.SendMessage(ctx, input)
	if err != nil {
		q.log.ErrorObj("sqs send failed", "publisher_sqs_error", deliveryFields(q, evt, map[string]any{
			"error": err.Error(),
		}))
		return fmt.Errorf("send message to sqs: %w", err)
	}
	q.log.DebugObj("sqs delivered event", "publisher_sqs_delivery", deliveryFields(q, evt, map[string]any{
		"message_id": aws.ToString(out.MessageId),
	}))
	return nil
}

func sqsAttributes(evt Event) map[string]types.MessageAttributeValue {
	attrs := make(map[string]types.MessageAttributeValue)
	for k, v := range evt.Attributes() {
		if v != "" {
			attrs[k] = types.MessageAttributeValue{DataType: aws.String("String"), StringValue: aws.String(v)}
		}
	}
	return attrs
}
