package mapper

import (
	"pulse-network-organizer/internal/entities"
	oapi "pulse-network-organizer/internal/oapi"
)

// FromOAPIReferral builds an entities.Referral from transport DTO.
func FromOAPIReferral(src oapi.ReferralInput) entities.Referral {
	return entities.Referral{
		GiverID:     src.GiverId,
		ReceiverID:  src.ReceiverId,
		Description: src.Description,
		Value:       src.Value,
	}
}

// ToOAPIReferral maps entities.Referral to transport model.
func ToOAPIReferral(r entities.Referral) oapi.Referral {
	return oapi.Referral{
		Id:          r.ID,
		GiverId:     r.GiverID,
		ReceiverId:  r.ReceiverID,
		Description: r.Description,
		Status:      string(r.Status),
		Value:       r.Value,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
		CompletedAt: r.CompletedAt,
	}
}

// ToOAPIReferrals maps a slice of referrals.
func ToOAPIReferrals(src []entities.Referral) []oapi.Referral {
	res := make([]oapi.Referral, 0, len(src))
	for _, r := range src {
		res = append(res, ToOAPIReferral(r))
	}
	return res
}

// ToOAPIReferralStats maps referral statistics.
func ToOAPIReferralStats(s entities.ReferralStats) oapi.ReferralStats {
	givers := make([]oapi.GiversGain, 0, len(s.TopGivers))
	for _, g := range s.TopGivers {
		givers = append(givers, oapi.GiversGain{
			ContactId: g.ContactID,
			Name:      g.Name,
			Given:     g.Given,
			Received:  g.Received,
			Completed: g.Completed,
			Balance:   g.Balance,
		})
	}
	return oapi.ReferralStats{ByStatus: statusCounts(s.ByStatus), TopGivers: givers}
}

func statusCounts(src map[entities.ReferralStatus]int64) map[string]int64 {
	res := make(map[string]int64, len(src))
	for k, v := range src {
		res[string(k)] = v
	}
	return res
}
