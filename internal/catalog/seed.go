/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package catalog

import "sitebuilder/internal/domain"

// seedTemplates returns the built-in templates. A handful carry full section
// content; the rest are thumbnail-only stubs that seed an empty page.
func seedTemplates() []domain.Template {
	detailed := []domain.Template{
		{
			ID:          "business-1",
			Name:        "Corporate",
			Description: "Professional business template",
			Category:    "business",
			Thumbnail:   "https://images.unsplash.com/photo-1497366216548-37526070297c?ixlib=rb-4.0.3&auto=format&fit=crop&w=200&h=150",
			Sections: []domain.Section{
				{ID: "header", Type: domain.SectionHeader, Order: 1, Config: &domain.HeaderConfig{
					Title:      "Your Company Name",
					Navigation: []string{"Home", "About", "Services", "Contact"},
					CTAButton:  "Get Started",
				}},
				{ID: "hero", Type: domain.SectionHero, Order: 2, Config: &domain.HeroConfig{
					Title:           "Professional Business Solutions",
					Subtitle:        "We help businesses grow with our expert services and innovative solutions.",
					CTAButtons:      []string{"Learn More", "Contact Us"},
					BackgroundImage: "https://images.unsplash.com/photo-1497366216548-37526070297c",
				}},
				{ID: "about", Type: domain.SectionAbout, Order: 3, Config: &domain.AboutConfig{
					Title:       "About Our Company",
					Description: "With years of experience in the industry, we provide top-notch services to help your business succeed.",
					Image:       "https://images.unsplash.com/photo-1507003211169-0a1dd7228f2d",
				}},
				{ID: "services", Type: domain.SectionServices, Order: 4, Config: &domain.ServicesConfig{
					Title: "Our Services",
					Services: []domain.ServiceItem{
						{Title: "Consulting", Description: "Expert business consulting", Icon: "fas fa-chart-line"},
						{Title: "Development", Description: "Custom software development", Icon: "fas fa-code"},
						{Title: "Support", Description: "24/7 customer support", Icon: "fas fa-headset"},
					},
				}},
				{ID: "footer", Type: domain.SectionFooter, Order: 5, Config: &domain.FooterConfig{
					Title:       "Get In Touch",
					Description: "Ready to work together? Contact us today.",
					SocialLinks: []string{"twitter", "linkedin", "facebook"},
				}},
			},
		},
		{
			ID:          "portfolio-3",
			Name:        "Developer",
			Description: "Minimal developer portfolio",
			Category:    "portfolio",
			Thumbnail:   "https://images.unsplash.com/photo-1461749280684-dccba630e2f6?ixlib=rb-4.0.3&auto=format&fit=crop&w=200&h=150",
			Sections: []domain.Section{
				{ID: "header", Type: domain.SectionHeader, Order: 1, Config: &domain.HeaderConfig{
					Title:      "John Doe",
					Navigation: []string{"Home", "About", "Portfolio", "Contact"},
					CTAButton:  "Get in Touch",
				}},
				{ID: "hero", Type: domain.SectionHero, Order: 2, Config: &domain.HeroConfig{
					Title:              "Full-Stack Developer & Design Enthusiast",
					Subtitle:           "I create beautiful, functional websites and applications that solve real-world problems.",
					CTAButtons:         []string{"View My Work", "Download Resume"},
					BackgroundGradient: "linear-gradient(135deg, #667eea 0%, #764ba2 100%)",
				}},
				{ID: "about", Type: domain.SectionAbout, Order: 3, Config: &domain.AboutConfig{
					Title:       "About Me",
					Description: "With over 5 years of experience in web development, I specialize in creating modern, responsive websites using the latest technologies.",
					Skills:      []string{"React", "Node.js", "TypeScript", "Python"},
					Image:       "https://images.unsplash.com/photo-1507003211169-0a1dd7228f2d",
				}},
				{ID: "services", Type: domain.SectionServices, Order: 4, Config: &domain.ServicesConfig{
					Title: "What I Do",
					Services: []domain.ServiceItem{
						{Title: "Frontend Development", Description: "Creating responsive, interactive user interfaces", Icon: "fas fa-code"},
						{Title: "Backend Development", Description: "Building robust APIs and server-side applications", Icon: "fas fa-server"},
						{Title: "Mobile Development", Description: "Developing cross-platform mobile applications", Icon: "fas fa-mobile-alt"},
					},
				}},
				{ID: "footer", Type: domain.SectionFooter, Order: 5, Config: &domain.FooterConfig{
					Title:       "Let's Work Together",
					Description: "Ready to bring your ideas to life? I'm here to help you create something amazing.",
					SocialLinks: []string{"twitter", "linkedin", "github", "dribbble"},
				}},
			},
		},
		{
			ID:          "business-2",
			Name:        "Bootstrap Corporate",
			Description: "Professional Bootstrap-based corporate website",
			Category:    "business",
			Thumbnail:   "https://images.unsplash.com/photo-1553877522-43269d4ea984",
			Sections: []domain.Section{
				{ID: "navbar", Type: domain.SectionHeader, Order: 1, Config: &domain.HeaderConfig{
					Title:      "BootCorp",
					Navigation: []string{"Home", "About", "Services", "Portfolio", "Contact"},
					CTAButton:  "Get Quote",
					Style:      "bootstrap-navbar",
					Fixed:      true,
				}},
				{ID: "hero-jumbotron", Type: domain.SectionHero, Order: 2, Config: &domain.HeroConfig{
					Title:           "Professional Business Solutions",
					Subtitle:        "Bootstrap-powered corporate website with modern components and responsive design for your business growth.",
					CTAButtons:      []string{"Learn More", "Contact Sales"},
					BackgroundImage: "https://images.unsplash.com/photo-1553877522-43269d4ea984",
					Layout:          "jumbotron",
					Overlay:         true,
				}},
				{ID: "features-cards", Type: domain.SectionServices, Order: 3, Config: &domain.ServicesConfig{
					Title:    "Why Choose Us",
					Subtitle: "Professional services with Bootstrap card components",
					Layout:   "card-deck",
					Services: []domain.ServiceItem{
						{Title: "Strategic Planning", Description: "Comprehensive business strategy development", Icon: "fas fa-chart-line", Badge: "Popular"},
						{Title: "Digital Transformation", Description: "Modern technology implementation", Icon: "fas fa-digital-tachograph", Badge: "New"},
						{Title: "24/7 Support", Description: "Round-the-clock customer assistance", Icon: "fas fa-headset", Badge: "Premium"},
					},
				}},
				{ID: "testimonials-carousel", Type: domain.SectionTestimonials, Order: 4, Config: &domain.TestimonialsConfig{
					Title:  "Client Success Stories",
					Layout: "carousel",
					Testimonials: []domain.TestimonialItem{
						{Name: "Sarah Johnson", Company: "Tech Startup", Text: "Amazing results with their Bootstrap implementation", Rating: 5},
						{Name: "Mike Chen", Company: "E-commerce", Text: "Professional service and great communication", Rating: 5},
					},
				}},
			},
		},
		{
			ID:          "business-3",
			Name:        "SaaS Landing",
			Description: "Modern SaaS product landing page",
			Category:    "business",
			Thumbnail:   "https://images.unsplash.com/photo-1507003211169-0a1dd7228f2d",
			Sections: []domain.Section{
				{ID: "saas-header", Type: domain.SectionHeader, Order: 1, Config: &domain.HeaderConfig{
					Title:       "SaaSPro",
					Navigation:  []string{"Features", "Pricing", "About", "Blog"},
					CTAButton:   "Start Free Trial",
					Style:       "minimal",
					Transparent: true,
				}},
				{ID: "hero-gradient", Type: domain.SectionHero, Order: 2, Config: &domain.HeroConfig{
					Title:              "Scale Your Business with AI-Powered SaaS",
					Subtitle:           "Join 10,000+ companies using our platform to streamline operations and boost productivity.",
					CTAButtons:         []string{"Start Free Trial", "Watch Demo"},
					BackgroundGradient: "linear-gradient(135deg, #667eea 0%, #764ba2 100%)",
					Features:           []string{"✓ 14-day free trial", "✓ No credit card required", "✓ Cancel anytime"},
				}},
				{ID: "feature-grid", Type: domain.SectionServices, Order: 3, Config: &domain.ServicesConfig{
					Title:    "Powerful Features",
					Subtitle: "Everything you need to manage and grow your business",
					Layout:   "grid-3",
					Services: []domain.ServiceItem{
						{Title: "Analytics Dashboard", Description: "Real-time insights and reporting", Icon: "fas fa-chart-bar"},
						{Title: "Team Collaboration", Description: "Work together seamlessly", Icon: "fas fa-users"},
						{Title: "API Integration", Description: "Connect with your favorite tools", Icon: "fas fa-plug"},
						{Title: "Advanced Security", Description: "Enterprise-grade protection", Icon: "fas fa-shield-alt"},
						{Title: "Custom Workflows", Description: "Automate your processes", Icon: "fas fa-cogs"},
						{Title: "24/7 Support", Description: "Get help when you need it", Icon: "fas fa-life-ring"},
					},
				}},
			},
		},
		{
			ID:          "ecommerce-1",
			Name:        "Fashion Store",
			Description: "Modern fashion e-commerce with React components",
			Category:    "ecommerce",
			Thumbnail:   "https://images.unsplash.com/photo-1441986300917-64674bd600d8",
			Sections: []domain.Section{
				{ID: "fashion-nav", Type: domain.SectionHeader, Order: 1, Config: &domain.HeaderConfig{
					Title:      "StyleHub",
					Navigation: []string{"Women", "Men", "Kids", "Sale", "Brands"},
					CTAButton:  "Search",
					Style:      "ecommerce",
					SearchBar:  true,
					CartIcon:   true,
				}},
				{ID: "fashion-hero", Type: domain.SectionHero, Order: 2, Config: &domain.HeroConfig{
					Title:            "New Spring Collection",
					Subtitle:         "Discover the latest trends and timeless pieces for your wardrobe.",
					CTAButtons:       []string{"Shop Women", "Shop Men"},
					BackgroundImage:  "https://images.unsplash.com/photo-1441986300917-64674bd600d8",
					Layout:           "split",
					ProductHighlight: true,
				}},
				{ID: "product-grid", Type: domain.SectionProducts, Order: 3, Config: &domain.ProductsConfig{
					Title:  "Featured Products",
					Layout: "grid-4",
					Products: []domain.ProductItem{
						{Name: "Designer Dress", Price: "$299", Image: "https://images.unsplash.com/photo-1595777457583-95e059d581b8", Badge: "New"},
						{Name: "Casual Sneakers", Price: "$129", Image: "https://images.unsplash.com/photo-1549298916-b41d501d3772", Badge: "Sale"},
						{Name: "Classic Handbag", Price: "$199", Image: "https://images.unsplash.com/photo-1553062407-98eeb64c6a62"},
						{Name: "Summer Jacket", Price: "$159", Image: "https://images.unsplash.com/photo-1551028719-00167b16eac5"},
					},
				}},
			},
		},
	}

	stubs := []domain.Template{
		{ID: "business-4", Name: "Digital Agency", Category: "business", Thumbnail: "https://images.unsplash.com/photo-1551836022-deb4988cc6c0", Description: "Creative agency portfolio with services"},
		{ID: "business-5", Name: "Startup MVP", Category: "business", Thumbnail: "https://images.unsplash.com/photo-1559136555-9303baea8ebd", Description: "Clean startup landing with call-to-action"},
		{ID: "business-6", Name: "Professional Services", Category: "business", Thumbnail: "https://images.unsplash.com/photo-1486406146926-c627a92ad1ab", Description: "Law firm, consulting, professional services"},
		{ID: "portfolio-1", Name: "Creative Portfolio", Category: "portfolio", Thumbnail: "https://images.unsplash.com/photo-1586717791821-3f44a563fa4c", Description: "Designer and artist portfolio showcase"},
		{ID: "portfolio-2", Name: "Photography Studio", Category: "portfolio", Thumbnail: "https://images.unsplash.com/photo-1542038784456-1ea8e935640e", Description: "Professional photography portfolio"},
		{ID: "portfolio-4", Name: "Architecture Firm", Category: "portfolio", Thumbnail: "https://images.unsplash.com/photo-1503387762-592deb58ef4e", Description: "Architectural projects showcase"},
		{ID: "portfolio-5", Name: "Personal Blog", Category: "portfolio", Thumbnail: "https://images.unsplash.com/photo-1486312338219-ce68e2c6c725", Description: "Personal brand and blog template"},
		{ID: "portfolio-6", Name: "Music Artist", Category: "portfolio", Thumbnail: "https://images.unsplash.com/photo-1493225457124-a3eb161ffa5f", Description: "Musician and artist portfolio"},
		{ID: "ecommerce-2", Name: "Tech Electronics", Category: "ecommerce", Thumbnail: "https://images.unsplash.com/photo-1560472354-b33ff0c44a43", Description: "Electronics store with product catalog"},
		{ID: "ecommerce-3", Name: "Handmade Crafts", Category: "ecommerce", Thumbnail: "https://images.unsplash.com/photo-1452860606245-08befc0ff44b", Description: "Artisan crafts and handmade products"},
		{ID: "ecommerce-4", Name: "Beauty & Wellness", Category: "ecommerce", Thumbnail: "https://images.unsplash.com/photo-1556228453-efd6c1ff04f6", Description: "Beauty products and wellness store"},
		{ID: "ecommerce-5", Name: "Food & Restaurant", Category: "ecommerce", Thumbnail: "https://images.unsplash.com/photo-1414235077428-838989a212a2d", Description: "Restaurant menu and online ordering"},
	}

	return append(detailed, stubs...)
}
