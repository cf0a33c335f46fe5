// Package catalog holds the fixed copy shown on the site.
package catalog

import "github.com/alexisbeaulieu97/techconsult/internal/domain/lead"

const (
	Brand     = "IT Tech Consultant"
	Copyright = "© 2024 IT Tech Consultant. All rights reserved."
)

// Hero is the banner at the top of a page.
type Hero struct {
	Title    string `json:"title"`
	Subtitle string `json:"subtitle"`
}

// CallToAction is a headline block with a single button.
type CallToAction struct {
	Title  string `json:"title"`
	Body   string `json:"body"`
	Action string `json:"action"`
}

// Highlight is a short service teaser on the home page.
type Highlight struct {
	Icon        string `json:"icon"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// Feature is one reason to choose the firm.
type Feature struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// Offering is a managed service with its key features.
type Offering struct {
	ServiceType lead.ServiceType `json:"serviceType"`
	Title       string           `json:"title"`
	Description string           `json:"description"`
	Features    []string         `json:"features"`
}

// Step is one stage of the request process.
type Step struct {
	Number      int    `json:"number"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

var (
	HomeHero = Hero{
		Title:    "Transform Your Business with Modern IT Solutions",
		Subtitle: "Leverage our expertise in managed services and AI-driven workflows to accelerate your digital transformation",
	}
	HomeCTA = CallToAction{
		Title:  "Ready to Optimize Your IT Infrastructure?",
		Body:   "Let our AI-powered workflow system analyze and enhance your IT operations",
		Action: "Request AI Analysis",
	}
	ServicesHero = Hero{
		Title:    "Managed IT Services",
		Subtitle: "Comprehensive IT solutions tailored to your business needs, powered by cutting-edge technology and expert support",
	}
	ServicesCTA = CallToAction{
		Title:  "Need a Custom Solution?",
		Body:   "Let our AI agent analyze your requirements and propose a tailored solution for your business",
		Action: "Start Consultation",
	}
	RequestHero = Hero{
		Title:    "AI Agent Workflow Request",
		Subtitle: "Let our AI analyze your requirements and create a customized workflow solution",
	}
)

// Highlights are the three teasers under "Our Services".
func Highlights() []Highlight {
	return []Highlight{
		{Icon: "🌐", Title: "Cloud Management", Description: "Optimize and manage your cloud infrastructure with our expert solutions."},
		{Icon: "🔒", Title: "Network Security", Description: "Protect your business with advanced security monitoring and threat management."},
		{Icon: "📊", Title: "Data Analytics", Description: "Transform raw data into actionable insights with AI-powered analytics."},
	}
}

// Features are the four items under "Why Choose Us".
func Features() []Feature {
	return []Feature{
		{Title: "Expert Team", Description: "Certified professionals with years of industry experience"},
		{Title: "24/7 Support", Description: "Round-the-clock technical support and monitoring"},
		{Title: "AI-Powered", Description: "Advanced AI solutions for workflow optimization"},
		{Title: "Scalable Solutions", Description: "Flexible services that grow with your business"},
	}
}

// Offerings are the four managed services.
func Offerings() []Offering {
	return []Offering{
		{
			ServiceType: lead.ServiceCloud,
			Title:       "Cloud Infrastructure Management",
			Description: "Comprehensive cloud solutions including migration, optimization, and ongoing management of your infrastructure across major cloud platforms.",
			Features:    []string{"Cloud Migration Strategy", "Performance Optimization", "Cost Management", "24/7 Monitoring"},
		},
		{
			ServiceType: lead.ServiceSecurity,
			Title:       "Network Security & Compliance",
			Description: "Enterprise-grade security solutions to protect your business assets and ensure regulatory compliance.",
			Features:    []string{"Threat Detection & Response", "Compliance Management", "Security Audits", "Employee Training"},
		},
		{
			ServiceType: lead.ServiceAnalytics,
			Title:       "Data Analytics & Business Intelligence",
			Description: "Transform your raw data into actionable insights with our advanced analytics solutions.",
			Features:    []string{"Data Visualization", "Predictive Analytics", "Custom Reporting", "Real-time Analytics"},
		},
		{
			ServiceType: lead.ServiceInfrastructure,
			Title:       "IT Infrastructure Optimization",
			Description: "Streamline and modernize your IT infrastructure for maximum efficiency and reliability.",
			Features:    []string{"Infrastructure Assessment", "Performance Tuning", "Capacity Planning", "Disaster Recovery"},
		},
	}
}

// Steps describe "How It Works" on the request page.
func Steps() []Step {
	return []Step{
		{Number: 1, Title: "Submit Request", Description: "Fill out our comprehensive form with your project details and requirements."},
		{Number: 2, Title: "AI Analysis", Description: "Our AI agent analyzes your requirements and creates a tailored solution proposal."},
		{Number: 3, Title: "Expert Review", Description: "Our team reviews the AI-generated proposal and refines it for optimal results."},
	}
}
