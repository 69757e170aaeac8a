package controllers

import (
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"strings"

	"neocal-backend/services"
	"neocal-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type MealController struct {
	recognizer *services.RecognizerService
	meals      *services.MealService
	images     *utils.ImageStore
}

func NewMealController(recognizer *services.RecognizerService, meals *services.MealService, images *utils.ImageStore) *MealController {
	return &MealController{recognizer: recognizer, meals: meals, images: images}
}

// LogFromText recognizes a free-text description and persists the meal.
// Recognition cannot fail (it degrades to heuristics), so the only error
// paths are binding and persistence.
func (mc *MealController) LogFromText(c *gin.Context) {
	var req struct {
		Description string `json:"description" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	candidates := mc.recognizer.RecognizeText(c.Request.Context(), req.Description)
	meal, err := mc.meals.AssembleMeal(currentUserID(c), candidates, "text", req.Description)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, meal)
}

// LogFromImage accepts a multipart upload, stores it (S3 or temp file), and
// feeds the stored reference to the image recognizer.
func (mc *MealController) LogFromImage(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file field required"})
		return
	}

	src, err := file.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unreadable upload"})
		return
	}
	defer src.Close()
	data, err := io.ReadAll(src)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unreadable upload"})
		return
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	if ext == "" {
		ext = ".jpg"
	}
	name := fmt.Sprintf("neocal_upload_%s%s", uuid.New().String(), ext)
	contentType := file.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "image/jpeg"
	}

	imageRef, err := mc.images.Save(c.Request.Context(), name, data, contentType)
	if err != nil {
		abortWithError(c, err)
		return
	}

	candidates := mc.recognizer.RecognizeImage(c.Request.Context(), imageRef)
	meal, err := mc.meals.AssembleMeal(currentUserID(c), candidates, "image", imageRef)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, meal)
}

func (mc *MealController) LogFromBarcode(c *gin.Context) {
	var req struct {
		Barcode            string `json:"barcode" binding:"required"`
		ServingDescription string `json:"serving_description"`
		Servings           int    `json:"servings"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Servings < 1 {
		req.Servings = 1
	}

	candidate := mc.recognizer.RecognizeBarcode(req.Barcode, req.Servings)

	originalInput := fmt.Sprintf("Barcode: %s", req.Barcode)
	if req.ServingDescription != "" {
		originalInput += fmt.Sprintf(", %s x%d", req.ServingDescription, req.Servings)
	}

	meal, err := mc.meals.AssembleMeal(currentUserID(c), []services.FoodCandidate{candidate}, "barcode", originalInput)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, meal)
}

type manualFood struct {
	Name       string   `json:"name" binding:"required"`
	Grams      float64  `json:"grams" binding:"required"`
	Calories   *float64 `json:"calories"`
	ProteinG   float64  `json:"protein_g"`
	CarbsG     float64  `json:"carbs_g"`
	FatG       float64  `json:"fat_g"`
	Confidence float64  `json:"confidence"`
}

// LogManual persists a structured food list without recognition. Foods with
// explicit calories are trusted as-is; the rest go through the table.
func (mc *MealController) LogManual(c *gin.Context) {
	var req struct {
		Foods         []manualFood `json:"foods" binding:"required"`
		OriginalInput string       `json:"original_input"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	candidates := make([]services.FoodCandidate, 0, len(req.Foods))
	for _, f := range req.Foods {
		confidence := f.Confidence
		if confidence == 0 {
			confidence = 0.75
		}
		cand := services.FoodCandidate{
			Name:       f.Name,
			Grams:      f.Grams,
			ModelLabel: strings.ReplaceAll(strings.ToLower(f.Name), " ", "_"),
			Confidence: confidence,
		}
		if f.Calories != nil {
			cand.HasMacros = true
			cand.Calories = *f.Calories
			cand.ProteinG = f.ProteinG
			cand.CarbsG = f.CarbsG
			cand.FatG = f.FatG
		}
		candidates = append(candidates, cand)
	}

	originalInput := req.OriginalInput
	if originalInput == "" {
		originalInput = "manual"
	}

	meal, err := mc.meals.AssembleMeal(currentUserID(c), candidates, "manual", originalInput)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, meal)
}

func (mc *MealController) GetMeal(c *gin.Context) {
	meal, err := mc.meals.GetMeal(currentUserID(c), c.Param("id"))
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, meal)
}

// ListMeals handles both ?date= and ?start=&end= forms.
func (mc *MealController) ListMeals(c *gin.Context) {
	userID := currentUserID(c)

	if start, end := c.Query("start"), c.Query("end"); start != "" || end != "" {
		meals, err := mc.meals.ListMealsForRange(userID, start, end)
		if err != nil {
			abortWithError(c, err)
			return
		}
		c.JSON(http.StatusOK, meals)
		return
	}

	meals, err := mc.meals.ListMealsForDate(userID, c.Query("date"))
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, meals)
}

func (mc *MealController) DeleteMeal(c *gin.Context) {
	if err := mc.meals.DeleteMeal(currentUserID(c), c.Param("id")); err != nil {
		abortWithError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
