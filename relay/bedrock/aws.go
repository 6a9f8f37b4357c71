package bedrock

import (
	"context"
	"sync"

	"github.com/Laisky/errors/v2"
	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/bedrock"
	"github.com/aws/aws-sdk-go-v2/service/bedrockruntime"
	runtimetypes "github.com/aws/aws-sdk-go-v2/service/bedrockruntime/types"
)

const jsonContentType = "application/json"

// AWSInvoker implements Invoker and ProfileLister on top of the AWS SDK
// clients. The SDK clients pool connections and are safe for concurrent
// use, so one AWSInvoker serves the whole process.
type AWSInvoker struct {
	runtime *bedrockruntime.Client
	control *bedrock.Client
}

var (
	_ Invoker       = (*AWSInvoker)(nil)
	_ ProfileLister = (*AWSInvoker)(nil)
)

// NewAWSInvoker builds an invoker from an already-resolved AWS config.
func NewAWSInvoker(cfg aws.Config) *AWSInvoker {
	return &AWSInvoker{
		runtime: bedrockruntime.NewFromConfig(cfg),
		control: bedrock.NewFromConfig(cfg),
	}
}

// NewAWSInvokerForRegion resolves the default AWS config for a region,
// optionally pinning static credentials, and builds an invoker from it.
func NewAWSInvokerForRegion(ctx context.Context, region, accessKeyID, secretAccessKey string) (*AWSInvoker, error) {
	opts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(region),
	}
	if accessKeyID != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(accessKeyID, secretAccessKey, "")))
	}

	cfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "load aws config")
	}
	return NewAWSInvoker(cfg), nil
}

func (a *AWSInvoker) InvokeModel(ctx context.Context, modelID string, body []byte) ([]byte, error) {
	resp, err := a.runtime.InvokeModel(ctx, &bedrockruntime.InvokeModelInput{
		ModelId:     aws.String(modelID),
		Body:        body,
		ContentType: aws.String(jsonContentType),
		Accept:      aws.String(jsonContentType),
	})
	if err != nil {
		return nil, errors.Wrap(err, "InvokeModel")
	}
	return resp.Body, nil
}

func (a *AWSInvoker) InvokeModelStream(ctx context.Context, modelID string, body []byte) (EventStream, error) {
	resp, err := a.runtime.InvokeModelWithResponseStream(ctx, &bedrockruntime.InvokeModelWithResponseStreamInput{
		ModelId:     aws.String(modelID),
		Body:        body,
		ContentType: aws.String(jsonContentType),
		Accept:      aws.String(jsonContentType),
	})
	if err != nil {
		return nil, errors.Wrap(err, "InvokeModelWithResponseStream")
	}
	return newAWSEventStream(resp.GetStream()), nil
}

// ListInferenceProfiles returns the ids of every inference profile
// visible in the configured region.
func (a *AWSInvoker) ListInferenceProfiles(ctx context.Context) ([]string, error) {
	var profileIDs []string
	paginator := bedrock.NewListInferenceProfilesPaginator(a.control, &bedrock.ListInferenceProfilesInput{})
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, errors.Wrap(err, "ListInferenceProfiles")
		}
		for _, summary := range page.InferenceProfileSummaries {
			if id := aws.ToString(summary.InferenceProfileId); id != "" {
				profileIDs = append(profileIDs, id)
			}
		}
	}
	return profileIDs, nil
}

// awsEventStream adapts the SDK response stream to the EventStream
// boundary, surfacing only chunk payload bytes. The pump goroutine
// exits when the SDK stream ends or the consumer calls Close.
type awsEventStream struct {
	stream *bedrockruntime.InvokeModelWithResponseStreamEventStream
	events chan []byte
	done   chan struct{}
	once   sync.Once
}

func newAWSEventStream(stream *bedrockruntime.InvokeModelWithResponseStreamEventStream) *awsEventStream {
	es := &awsEventStream{
		stream: stream,
		events: make(chan []byte),
		done:   make(chan struct{}),
	}
	go es.pump()
	return es
}

func (es *awsEventStream) pump() {
	defer close(es.events)
	for event := range es.stream.Events() {
		chunk, ok := event.(*runtimetypes.ResponseStreamMemberChunk)
		if !ok {
			continue
		}
		select {
		case es.events <- chunk.Value.Bytes:
		case <-es.done:
			return
		}
	}
}

func (es *awsEventStream) Events() <-chan []byte {
	return es.events
}

func (es *awsEventStream) Err() error {
	return es.stream.Err()
}

func (es *awsEventStream) Close() error {
	es.once.Do(func() { close(es.done) })
	return es.stream.Close()
}
