package usecase

import (
	"context"
	"fmt"
	"math/rand"
	"strings"
	"sync"

	"github.com/google/uuid"

	"pawfuel/internal/core/domain"
	"pawfuel/internal/core/port"
)

// Segment-keyed Instagram templates. {productName} is substituted on
// generation. Unknown segments fall back to the new-puppy-owner set.
var instagramTemplates = map[string][]string{
	domain.SegmentNewPuppyOwner: {
		"New puppy parent? Your little one deserves the BEST start! Our {productName} supports healthy gut development and strong bones. Watch them thrive! #NewPuppyLife #HealthyPuppies #GutHealth",
		"Puppy parenthood just got easier! {productName} is specially crafted for growing pups who need extra support for their tummies and bones. #PuppyNutrition #HealthyGrowth #BoneStrong",
		"From tiny paws to strong bones! {productName} gives your puppy the gut health foundation they need for a lifetime of tail wags. #PuppyWellness #DigestiveHealth #StrongBones",
	},
	domain.SegmentExperiencedOwner: {
		"You know quality when you see it. {productName} delivers targeted nutrition for gut health and bone development - because experience teaches you what matters most. #QualityNutrition #ExpertChoice #PuppyHealth",
		"The science is clear: early nutrition impacts lifelong health. {productName} provides research-backed support for digestive wellness and skeletal development. #ScienceBased #PuppyNutrition #HealthFoundation",
	},
	domain.SegmentVeterinarian: {
		"Vet-recommended nutrition starts early. {productName} offers clinically-formulated support for puppy gut microbiome and bone mineralization. Trust the science. #VetRecommended #ClinicalNutrition #PuppyHealth",
	},
	domain.SegmentBreeder: {
		"Champion bloodlines deserve champion nutrition. {productName} provides the foundation for healthy gut development and strong skeletal formation in your precious puppies. #BreederChoice #ChampionNutrition #HealthyPuppies",
	},
}

var hashtagSets = map[string][]string{
	"health_focused": {"#PuppyHealth", "#GutHealth", "#BoneStrong", "#HealthyPuppies", "#DigestiveWellness"},
	"lifestyle":      {"#PuppyLife", "#DogMom", "#DogDad", "#PuppyLove", "#NewPuppy"},
	"nutrition":      {"#PuppyNutrition", "#QualityFood", "#HealthyGrowth", "#PremiumNutrition", "#VetApproved"},
	"engagement":     {"#PuppyParents", "#HealthyDogs", "#DogCommunity", "#PuppyTips", "#DogWellness"},
}

// SocialService produces segment-targeted social posts. It implements
// port.SocialUseCase. Safe for concurrent use: the template picker draws
// from a single rand.Rand, which is not goroutine-safe, so access is
// serialized through mu.
type SocialService struct {
	texts port.TextGenerator

	mu   sync.Mutex
	rand *rand.Rand
}

// NewSocialService creates the social post generator; texts is used only by
// AICopy.
func NewSocialService(texts port.TextGenerator, src rand.Source) *SocialService {
	return &SocialService{texts: texts, rand: rand.New(src)}
}

func (s *SocialService) pickTemplate(templates []string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return templates[s.rand.Intn(len(templates))]
}

// Posts returns a templated Instagram post for the segment plus additional
// interest-targeted posts. Hashtags are selected from the fixed sets based
// on health focus, de-duplicated and capped at fifteen.
func (s *SocialService) Posts(productName, segment string, healthFocus, interests []string) []domain.SocialPost {
	posts := []domain.SocialPost{s.basePost(productName, segment, healthFocus)}

	for _, interest := range interests {
		switch interest {
		case "training":
			posts = append(posts, domain.SocialPost{
				ID:       uuid.NewString(),
				Platform: "instagram",
				Content: fmt.Sprintf("Training tip: A healthy gut means better focus! %s supports digestive wellness so your puppy can concentrate on learning. Smart nutrition for smart pups! #PuppyTraining #SmartNutrition",
					productName),
				Hashtags:      []string{"#PuppyTraining", "#GutHealth", "#SmartPuppies", "#HealthyLearning", "#PuppyTips"},
				TargetSegment: segment,
			})
		case "exercise":
			posts = append(posts, domain.SocialPost{
				ID:       uuid.NewString(),
				Platform: "instagram",
				Content: fmt.Sprintf("Active pups need strong foundations! %s builds the bone strength your energetic puppy needs for all those zoomies. #ActivePuppies #BoneStrong",
					productName),
				Hashtags:      []string{"#ActiveDogs", "#BoneStrong", "#PuppyExercise", "#HealthyBones", "#EnergeticPups"},
				TargetSegment: segment,
			})
		}
	}
	return posts
}

func (s *SocialService) basePost(productName, segment string, healthFocus []string) domain.SocialPost {
	templates, ok := instagramTemplates[segment]
	if !ok {
		templates = instagramTemplates[domain.SegmentNewPuppyOwner]
	}
	content := strings.ReplaceAll(s.pickTemplate(templates), "{productName}", productName)

	hashtags := append([]string{}, hashtagSets["engagement"]...)
	for _, f := range healthFocus {
		if f == "gut_health" || f == "bone_strength" {
			hashtags = append(hashtags, hashtagSets["health_focused"]...)
			break
		}
	}
	hashtags = append(hashtags, hashtagSets["lifestyle"]...)
	hashtags = append(hashtags, hashtagSets["nutrition"]...)

	seen := make(map[string]struct{}, len(hashtags))
	unique := hashtags[:0]
	for _, h := range hashtags {
		if _, dup := seen[h]; dup {
			continue
		}
		seen[h] = struct{}{}
		unique = append(unique, h)
	}
	if len(unique) > 15 {
		unique = unique[:15]
	}

	return domain.SocialPost{
		ID:            uuid.NewString(),
		Platform:      "instagram",
		Content:       content,
		Hashtags:      unique,
		TargetSegment: segment,
	}
}

// AICopy asks the text-generation endpoint for a short Instagram post.
func (s *SocialService) AICopy(ctx context.Context, productName, targetAudience string, healthFocus []string, apiKey string) (string, error) {
	if strings.TrimSpace(apiKey) == "" {
		return "", port.ErrMissingAPIKey
	}
	prompt := fmt.Sprintf("Create an engaging Instagram post for %s, a puppy food focused on %s. Target audience: %s. Include relevant emojis and keep it under 150 characters.",
		productName, strings.Join(healthFocus, " and "), targetAudience)
	text, err := s.texts.Generate(ctx, port.GenerateRequest{
		Prompt:      prompt,
		APIKey:      apiKey,
		MaxTokens:   100,
		Temperature: 0.8,
	})
	if err != nil {
		return "", err
	}
	if text == "" {
		return "Custom content generated!", nil
	}
	return text, nil
}
