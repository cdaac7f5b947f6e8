package services

import (
	"time"

	"clean/internal/models/db_models"
	"clean/internal/models/response_models"
)

const dateLayout = "2006-01-02"

func toAccountResponse(a *db_models.Account) response_models.AccountResponse {
	problems := []string(a.SkinProblems)
	if problems == nil {
		problems = []string{}
	}
	return response_models.AccountResponse{
		ID:           a.ID.String(),
		Username:     a.Username,
		Email:        a.Email,
		Role:         a.Role,
		IsStaff:      a.IsStaff(),
		SkinType:     a.SkinType,
		SkinProblems: problems,
		DateJoined:   time.Unix(a.CreatedAt, 0).UTC().Format(time.RFC3339),
	}
}

func toCosmeticResponse(c *db_models.Cosmetic) response_models.CosmeticResponse {
	return response_models.CosmeticResponse{
		Barcode:      c.Barcode,
		ProductName:  c.ProductName,
		Manufacturer: c.Manufacturer,
		Description:  c.Description,
		Category:     c.Category,
		PurchaseLink: c.PurchaseLink,
		IsVerified:   c.IsVerified,
	}
}

func toIngredientResponse(i *db_models.Ingredient) response_models.IngredientResponse {
	return response_models.IngredientResponse{
		CosingRefNo:            i.CosingRefNo,
		INCIName:               i.INCIName,
		CommonName:             i.CommonName,
		ActionDescription:      i.ActionDescription,
		Function:               i.Function,
		Restrictions:           i.Restrictions,
		UpdateDate:             i.UpdateDate,
		SafetyRating:           i.SafetyRating,
		RestrictionDescription: i.RestrictionDescription,
	}
}

func toCompositionResponse(c *db_models.CosmeticComposition) response_models.CompositionItemResponse {
	return response_models.CompositionItemResponse{
		ID:                 c.ID,
		Cosmetic:           c.CosmeticBarcode,
		Ingredient:         toIngredientResponse(&c.Ingredient),
		OrderInComposition: c.OrderInComposition,
	}
}

func toReviewResponse(r *db_models.Review) response_models.ReviewResponse {
	return response_models.ReviewResponse{
		ID:         r.ID.String(),
		Cosmetic:   r.CosmeticBarcode,
		UserID:     r.AccountID.String(),
		Username:   r.Account.Username,
		Title:      r.Title,
		Content:    r.Content,
		Rating:     r.Rating,
		ReviewDate: r.ReviewDate.Format(dateLayout),
	}
}

func toExpertOpinionResponse(o *db_models.ExpertOpinion) response_models.ExpertOpinionResponse {
	skinTypes := []string(o.SkinTypes)
	if skinTypes == nil {
		skinTypes = []string{}
	}
	return response_models.ExpertOpinionResponse{
		ID:             o.ID.String(),
		Cosmetic:       o.CosmeticBarcode,
		ExpertName:     o.Account.Username,
		ExpertTitle:    o.ExpertTitle,
		Rating:         o.Rating,
		Content:        o.Content,
		Recommendation: o.Recommendation,
		SkinTypes:      skinTypes,
		CreatedAt:      time.Unix(o.CreatedAt, 0).UTC().Format(time.RFC3339),
	}
}

func toCarePlanResponse(p *db_models.CarePlan) response_models.CarePlanResponse {
	resp := response_models.CarePlanResponse{
		ID:          p.ID.String(),
		PlanName:    p.PlanName,
		Description: p.Description,
		StartDate:   p.StartDate.Format(dateLayout),
		Contents:    make([]response_models.CarePlanContentResponse, 0, len(p.Contents)),
	}
	if p.EndDate != nil {
		end := p.EndDate.Format(dateLayout)
		resp.EndDate = &end
	}
	for i := range p.Contents {
		c := &p.Contents[i]
		resp.Contents = append(resp.Contents, response_models.CarePlanContentResponse{
			ID:        c.ID.String(),
			Cosmetic:  toCosmeticResponse(&c.Cosmetic),
			Frequency: c.Frequency,
			TimeOfDay: c.TimeOfDay,
			Notes:     c.Notes,
		})
	}
	for _, r := range p.Ratings {
		if r.Rating {
			resp.Likes++
		} else {
			resp.Dislikes++
		}
	}
	return resp
}
