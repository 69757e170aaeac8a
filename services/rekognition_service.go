package services

import (
	"context"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/rekognition"
	"github.com/aws/aws-sdk-go-v2/service/rekognition/types"
)

// RekognitionService is the last managed image-classification strategy in
// the chain. DetectLabels returns generic scene labels, so results are
// filtered down to our food vocabulary before they become candidates.
type RekognitionService struct {
	client *rekognition.Client
}

func NewRekognitionService(region string) (*RekognitionService, error) {
	cfg, err := awsconfig.LoadDefaultConfig(context.TODO(),
		awsconfig.WithRegion(region))
	if err != nil {
		return nil, err
	}
	return &RekognitionService{client: rekognition.NewFromConfig(cfg)}, nil
}

// DetectFoodLabels classifies imageRef and keeps only labels present in
// vocabulary with confidence >= 0.25, capped to the top 5.
func (r *RekognitionService) DetectFoodLabels(ctx context.Context, imageRef string, vocabulary []string) ([]hfClassification, error) {
	data, err := readImage(imageRef)
	if err != nil {
		return nil, err
	}

	out, err := r.client.DetectLabels(ctx, &rekognition.DetectLabelsInput{
		Image:         &types.Image{Bytes: data},
		MaxLabels:     aws.Int32(20),
		MinConfidence: aws.Float32(25),
	})
	if err != nil {
		return nil, err
	}

	vocab := make(map[string]struct{}, len(vocabulary))
	for _, v := range vocabulary {
		vocab[v] = struct{}{}
	}

	var results []hfClassification
	for _, l := range out.Labels {
		if l.Name == nil || l.Confidence == nil {
			continue
		}
		name := strings.ToLower(*l.Name)
		if _, ok := vocab[name]; !ok {
			continue
		}
		results = append(results, hfClassification{
			Label: name,
			Score: float64(*l.Confidence) / 100,
		})
		if len(results) == 5 {
			break
		}
	}
	return results, nil
}
