package storage

import "github.com/cardwise/cardwise-backend/internal/models"

// ReferenceCards returns the seed dataset of Indian credit cards.
// SeedCards on each store inserts these once, skipping if any card exists.
func ReferenceCards() []models.CreditCard {
	return []models.CreditCard{
		{
			Name:                "HDFC Regalia",
			Issuer:              "HDFC Bank",
			JoiningFee:          "2500",
			AnnualFee:           "2500",
			RewardType:          "Cashback & Points",
			RewardRate:          "4% on Dining, 2% on Grocery",
			EligibilityCriteria: "Monthly income ₹25,000+, Credit Score 750+",
			SpecialPerks:        []string{"Airport Lounge Access", "Travel Insurance", "Dining Privileges"},
			AffiliateLink:       "https://example.com/hdfc-regalia",
			ApplyLink:           "https://hdfcbank.com/apply-regalia",
			CardType:            "Travel",
			MinCreditScore:      score(750),
			MinIncome:           "25000",
			IsActive:            true,
		},
		{
			Name:                "ICICI Amazon Pay",
			Issuer:              "ICICI Bank",
			JoiningFee:          "0",
			AnnualFee:           "0",
			RewardType:          "Cashback",
			RewardRate:          "5% on Amazon, 2% elsewhere",
			EligibilityCriteria: "Monthly income ₹20,000+, Credit Score 700+",
			SpecialPerks:        []string{"Amazon Prime Benefits", "No Annual Fee", "Instant Approval"},
			AffiliateLink:       "https://example.com/icici-amazon",
			ApplyLink:           "https://icicibank.com/apply-amazon",
			CardType:            "Cashback",
			MinCreditScore:      score(700),
			MinIncome:           "20000",
			IsActive:            true,
		},
		{
			Name:                "SBI Simply Save",
			Issuer:              "State Bank of India",
			JoiningFee:          "499",
			AnnualFee:           "499",
			RewardType:          "Reward Points",
			RewardRate:          "10% on Dining, 5% on Grocery",
			EligibilityCriteria: "Monthly income ₹15,000+, Credit Score 650+",
			SpecialPerks:        []string{"Dining Rewards", "Fuel Surcharge Waiver", "Movie Discounts"},
			AffiliateLink:       "https://example.com/sbi-simplysave",
			ApplyLink:           "https://sbi.co.in/apply-simplysave",
			CardType:            "Dining",
			MinCreditScore:      score(650),
			MinIncome:           "15000",
			IsActive:            true,
		},
		{
			Name:                "Axis Magnus",
			Issuer:              "Axis Bank",
			JoiningFee:          "12500",
			AnnualFee:           "12500",
			RewardType:          "Miles & Points",
			RewardRate:          "25 Edge Miles per ₹200",
			EligibilityCriteria: "Monthly income ₹150,000+, Credit Score 800+",
			SpecialPerks:        []string{"Priority Pass", "Golf Benefits", "Travel Credits", "Concierge"},
			AffiliateLink:       "https://example.com/axis-magnus",
			ApplyLink:           "https://axisbank.com/apply-magnus",
			CardType:            "Travel",
			MinCreditScore:      score(800),
			MinIncome:           "150000",
			IsActive:            true,
		},
		{
			Name:                "Kotak League Platinum",
			Issuer:              "Kotak Bank",
			JoiningFee:          "999",
			AnnualFee:           "999",
			RewardType:          "Reward Points",
			RewardRate:          "6% on Movies, 4% on Dining",
			EligibilityCriteria: "Monthly income ₹30,000+, Credit Score 720+",
			SpecialPerks:        []string{"Movie Tickets", "Dining Offers", "Fuel Benefits"},
			AffiliateLink:       "https://example.com/kotak-league",
			ApplyLink:           "https://kotakbank.com/apply-league",
			CardType:            "Entertainment",
			MinCreditScore:      score(720),
			MinIncome:           "30000",
			IsActive:            true,
		},
		{
			Name:                "YES First Exclusive",
			Issuer:              "YES Bank",
			JoiningFee:          "2999",
			AnnualFee:           "2999",
			RewardType:          "Reward Points",
			RewardRate:          "3% Universal Rewards",
			EligibilityCriteria: "Monthly income ₹50,000+, Credit Score 750+",
			SpecialPerks:        []string{"Priority Pass", "Concierge Services", "Travel Benefits"},
			AffiliateLink:       "https://example.com/yes-first",
			ApplyLink:           "https://yesbank.in/apply-first",
			CardType:            "Premium",
			MinCreditScore:      score(750),
			MinIncome:           "50000",
			IsActive:            true,
		},
		{
			Name:                "Standard Chartered Ultimate",
			Issuer:              "Standard Chartered",
			JoiningFee:          "4999",
			AnnualFee:           "4999",
			RewardType:          "Miles & Points",
			RewardRate:          "5X Rewards on Dining & Travel",
			EligibilityCriteria: "Monthly income ₹100,000+, Credit Score 780+",
			SpecialPerks:        []string{"Hotel Upgrades", "Travel Credits", "Golf Benefits"},
			AffiliateLink:       "https://example.com/sc-ultimate",
			ApplyLink:           "https://sc.com/apply-ultimate",
			CardType:            "Travel",
			MinCreditScore:      score(780),
			MinIncome:           "100000",
			IsActive:            true,
		},
		{
			Name:                "AMEX Platinum Travel",
			Issuer:              "American Express",
			JoiningFee:          "3500",
			AnnualFee:           "3500",
			RewardType:          "Membership Rewards",
			RewardRate:          "18 Points per ₹100",
			EligibilityCriteria: "Monthly income ₹60,000+, Credit Score 760+",
			SpecialPerks:        []string{"Taj Benefits", "Airport Transfer", "Travel Insurance"},
			AffiliateLink:       "https://example.com/amex-platinum",
			ApplyLink:           "https://americanexpress.com/apply",
			CardType:            "Travel",
			MinCreditScore:      score(760),
			MinIncome:           "60000",
			IsActive:            true,
		},
		{
			Name:                "HDFC Millennia",
			Issuer:              "HDFC Bank",
			JoiningFee:          "1000",
			AnnualFee:           "1000",
			RewardType:          "Cashback",
			RewardRate:          "5% on Online Shopping, 2.5% elsewhere",
			EligibilityCriteria: "Monthly income ₹25,000+, Credit Score 720+",
			SpecialPerks:        []string{"Online Shopping Rewards", "No Forex Markup", "Instant Discounts"},
			AffiliateLink:       "https://example.com/hdfc-millennia",
			ApplyLink:           "https://hdfcbank.com/apply-millennia",
			CardType:            "Cashback",
			MinCreditScore:      score(720),
			MinIncome:           "25000",
			IsActive:            true,
		},
		{
			Name:                "ICICI Sapphiro",
			Issuer:              "ICICI Bank",
			JoiningFee:          "3500",
			AnnualFee:           "3500",
			RewardType:          "Reward Points",
			RewardRate:          "3.3% on Dining & International",
			EligibilityCriteria: "Monthly income ₹75,000+, Credit Score 750+",
			SpecialPerks:        []string{"Airport Lounge", "Golf Benefits", "Concierge"},
			AffiliateLink:       "https://example.com/icici-sapphiro",
			ApplyLink:           "https://icicibank.com/apply-sapphiro",
			CardType:            "Travel",
			MinCreditScore:      score(750),
			MinIncome:           "75000",
			IsActive:            true,
		},
		{
			Name:                "SBI Card PRIME",
			Issuer:              "SBI Card",
			JoiningFee:          "2999",
			AnnualFee:           "2999",
			RewardType:          "Reward Points",
			RewardRate:          "5X on Dining, Entertainment",
			EligibilityCriteria: "Monthly income ₹30,000+, Credit Score 700+",
			SpecialPerks:        []string{"Movie Benefits", "Dining Privileges", "Fuel Surcharge Waiver"},
			AffiliateLink:       "https://example.com/sbi-prime",
			ApplyLink:           "https://sbicard.com/apply-prime",
			CardType:            "Entertainment",
			MinCreditScore:      score(700),
			MinIncome:           "30000",
			IsActive:            true,
		},
		{
			Name:                "Axis Privilege",
			Issuer:              "Axis Bank",
			JoiningFee:          "1500",
			AnnualFee:           "1500",
			RewardType:          "Miles",
			RewardRate:          "2X Miles on Travel",
			EligibilityCriteria: "Monthly income ₹40,000+, Credit Score 730+",
			SpecialPerks:        []string{"Travel Miles", "Golf Benefits", "Priority Check-in"},
			AffiliateLink:       "https://example.com/axis-privilege",
			ApplyLink:           "https://axisbank.com/apply-privilege",
			CardType:            "Travel",
			MinCreditScore:      score(730),
			MinIncome:           "40000",
			IsActive:            true,
		},
		{
			Name:                "HDFC MoneyBack",
			Issuer:              "HDFC Bank",
			JoiningFee:          "500",
			AnnualFee:           "500",
			RewardType:          "Cashback",
			RewardRate:          "20% on Utility Bills, 5% on Groceries",
			EligibilityCriteria: "Monthly income ₹15,000+, Credit Score 650+",
			SpecialPerks:        []string{"Utility Cashback", "Grocery Rewards", "Fuel Benefits"},
			AffiliateLink:       "https://example.com/hdfc-moneyback",
			ApplyLink:           "https://hdfcbank.com/apply-moneyback",
			CardType:            "Cashback",
			MinCreditScore:      score(650),
			MinIncome:           "15000",
			IsActive:            true,
		},
		{
			Name:                "ICICI Platinum",
			Issuer:              "ICICI Bank",
			JoiningFee:          "199",
			AnnualFee:           "199",
			RewardType:          "Reward Points",
			RewardRate:          "2% on Dining, 1% elsewhere",
			EligibilityCriteria: "Monthly income ₹20,000+, Credit Score 680+",
			SpecialPerks:        []string{"Dining Offers", "Movie Discounts", "Fuel Surcharge Waiver"},
			AffiliateLink:       "https://example.com/icici-platinum",
			ApplyLink:           "https://icicibank.com/apply-platinum",
			CardType:            "Dining",
			MinCreditScore:      score(680),
			MinIncome:           "20000",
			IsActive:            true,
		},
		{
			Name:                "Kotak Royale Signature",
			Issuer:              "Kotak Bank",
			JoiningFee:          "1999",
			AnnualFee:           "1999",
			RewardType:          "Reward Points",
			RewardRate:          "4% on Dining & Travel",
			EligibilityCriteria: "Monthly income ₹50,000+, Credit Score 740+",
			SpecialPerks:        []string{"Priority Pass", "Travel Benefits", "Concierge"},
			AffiliateLink:       "https://example.com/kotak-royale",
			ApplyLink:           "https://kotakbank.com/apply-royale",
			CardType:            "Travel",
			MinCreditScore:      score(740),
			MinIncome:           "50000",
			IsActive:            true,
		},
		{
			Name:                "YES Prosperity Cashback",
			Issuer:              "YES Bank",
			JoiningFee:          "750",
			AnnualFee:           "750",
			RewardType:          "Cashback",
			RewardRate:          "5% on Groceries, 3% on Fuel",
			EligibilityCriteria: "Monthly income ₹25,000+, Credit Score 700+",
			SpecialPerks:        []string{"Grocery Cashback", "Fuel Benefits", "Utility Rewards"},
			AffiliateLink:       "https://example.com/yes-prosperity",
			ApplyLink:           "https://yesbank.in/apply-prosperity",
			CardType:            "Cashback",
			MinCreditScore:      score(700),
			MinIncome:           "25000",
			IsActive:            true,
		},
		{
			Name:                "IndusInd Pioneer Heritage Metal",
			Issuer:              "IndusInd Bank",
			JoiningFee:          "3000",
			AnnualFee:           "3000",
			RewardType:          "Reward Points",
			RewardRate:          "3% on Dining & Entertainment",
			EligibilityCriteria: "Monthly income ₹75,000+, Credit Score 750+",
			SpecialPerks:        []string{"Airport Lounge", "Golf Benefits", "Concierge Services"},
			AffiliateLink:       "https://example.com/indusind-pioneer",
			ApplyLink:           "https://indusind.com/apply-pioneer",
			CardType:            "Premium",
			MinCreditScore:      score(750),
			MinIncome:           "75000",
			IsActive:            true,
		},
		{
			Name:                "RBL Bank World Safari",
			Issuer:              "RBL Bank",
			JoiningFee:          "2500",
			AnnualFee:           "2500",
			RewardType:          "Travel Points",
			RewardRate:          "4% on Travel & Dining",
			EligibilityCriteria: "Monthly income ₹60,000+, Credit Score 720+",
			SpecialPerks:        []string{"Travel Benefits", "Airport Lounge", "Hotel Privileges"},
			AffiliateLink:       "https://example.com/rbl-safari",
			ApplyLink:           "https://rblbank.com/apply-safari",
			CardType:            "Travel",
			MinCreditScore:      score(720),
			MinIncome:           "60000",
			IsActive:            true,
		},
		{
			Name:                "IDFC FIRST Wealth",
			Issuer:              "IDFC FIRST Bank",
			JoiningFee:          "2000",
			AnnualFee:           "2000",
			RewardType:          "Reward Points",
			RewardRate:          "6X on Dining, 3X on Others",
			EligibilityCriteria: "Monthly income ₹45,000+, Credit Score 730+",
			SpecialPerks:        []string{"Airport Lounge", "Golf Benefits", "Dining Privileges"},
			AffiliateLink:       "https://example.com/idfc-wealth",
			ApplyLink:           "https://idfcfirstbank.com/apply-wealth",
			CardType:            "Dining",
			MinCreditScore:      score(730),
			MinIncome:           "45000",
			IsActive:            true,
		},
		{
			Name:                "AU Bank Zenith",
			Issuer:              "AU Small Finance Bank",
			JoiningFee:          "1500",
			AnnualFee:           "1500",
			RewardType:          "Cashback",
			RewardRate:          "3% on Online Spends",
			EligibilityCriteria: "Monthly income ₹35,000+, Credit Score 710+",
			SpecialPerks:        []string{"Online Shopping Rewards", "Movie Benefits", "Fuel Surcharge Waiver"},
			AffiliateLink:       "https://example.com/au-zenith",
			ApplyLink:           "https://aubank.in/apply-zenith",
			CardType:            "Cashback",
			MinCreditScore:      score(710),
			MinIncome:           "35000",
			IsActive:            true,
		},
		{
			Name:                "Federal Bank Signet",
			Issuer:              "Federal Bank",
			JoiningFee:          "999",
			AnnualFee:           "999",
			RewardType:          "Reward Points",
			RewardRate:          "4% on Utilities, 2% on Groceries",
			EligibilityCriteria: "Monthly income ₹25,000+, Credit Score 690+",
			SpecialPerks:        []string{"Utility Benefits", "Grocery Rewards", "Fuel Benefits"},
			AffiliateLink:       "https://example.com/federal-signet",
			ApplyLink:           "https://federalbank.co.in/apply-signet",
			CardType:            "Utility",
			MinCreditScore:      score(690),
			MinIncome:           "25000",
			IsActive:            true,
		},
		{
			Name:                "BOB Eterna",
			Issuer:              "Bank of Baroda",
			JoiningFee:          "2999",
			AnnualFee:           "2999",
			RewardType:          "Reward Points",
			RewardRate:          "5% on Travel, 3% on Dining",
			EligibilityCriteria: "Monthly income ₹50,000+, Credit Score 720+",
			SpecialPerks:        []string{"Travel Benefits", "Airport Lounge", "Golf Privileges"},
			AffiliateLink:       "https://example.com/bob-eterna",
			ApplyLink:           "https://bankofbaroda.in/apply-eterna",
			CardType:            "Travel",
			MinCreditScore:      score(720),
			MinIncome:           "50000",
			IsActive:            true,
		},
		{
			Name:                "PNB Select",
			Issuer:              "Punjab National Bank",
			JoiningFee:          "1499",
			AnnualFee:           "1499",
			RewardType:          "Reward Points",
			RewardRate:          "3% on Dining & Entertainment",
			EligibilityCriteria: "Monthly income ₹30,000+, Credit Score 700+",
			SpecialPerks:        []string{"Dining Offers", "Movie Benefits", "Fuel Surcharge Waiver"},
			AffiliateLink:       "https://example.com/pnb-select",
			ApplyLink:           "https://pnbindia.in/apply-select",
			CardType:            "Entertainment",
			MinCreditScore:      score(700),
			MinIncome:           "30000",
			IsActive:            true,
		},
		{
			Name:                "Canara Bank Platinum",
			Issuer:              "Canara Bank",
			JoiningFee:          "750",
			AnnualFee:           "750",
			RewardType:          "Reward Points",
			RewardRate:          "2% on All Spends",
			EligibilityCriteria: "Monthly income ₹20,000+, Credit Score 650+",
			SpecialPerks:        []string{"Universal Rewards", "Fuel Benefits", "Movie Discounts"},
			AffiliateLink:       "https://example.com/canara-platinum",
			ApplyLink:           "https://canarabank.com/apply-platinum",
			CardType:            "General",
			MinCreditScore:      score(650),
			MinIncome:           "20000",
			IsActive:            true,
		},
		{
			Name:                "Union Bank of India Platinum",
			Issuer:              "Union Bank of India",
			JoiningFee:          "500",
			AnnualFee:           "500",
			RewardType:          "Reward Points",
			RewardRate:          "1.5% on All Purchases",
			EligibilityCriteria: "Monthly income ₹18,000+, Credit Score 640+",
			SpecialPerks:        []string{"Low Annual Fee", "Fuel Surcharge Waiver", "Utility Benefits"},
			AffiliateLink:       "https://example.com/ubi-platinum",
			ApplyLink:           "https://unionbankofindia.co.in/apply-platinum",
			CardType:            "General",
			MinCreditScore:      score(640),
			MinIncome:           "18000",
			IsActive:            true,
		},
	}
}

func score(v int) *int {
	return &v
}
