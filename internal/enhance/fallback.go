package enhance

import "strings"

// Canned per-section responses served when the remote endpoint is down or
// unconfigured, keyed by lowercase section name.
var cannedEnhancements = map[string]Response{
	"summary": {
		EnhancedContent: "Dynamic and results-driven Full-Stack Developer with 5+ years of experience architecting and implementing scalable web solutions. Demonstrated expertise in React, Node.js, and cloud technologies, with a proven track record of delivering exceptional user experiences that drive business growth and customer satisfaction.",
		Suggestions: []string{
			"Consider adding specific metrics to quantify your impact",
			"Highlight your leadership and collaboration skills",
			"Mention any relevant certifications or awards",
		},
	},
	"experience": {
		EnhancedContent: "Spearheaded the end-to-end development of mission-critical customer-facing web applications, successfully serving 100,000+ daily active users while maintaining 99.9% uptime. Collaborated cross-functionally with product, design, and DevOps teams to deliver innovative solutions that exceeded performance benchmarks and user satisfaction metrics.",
		Suggestions: []string{
			"Use strong action verbs to start each bullet point",
			"Include specific technologies and tools used",
			"Quantify achievements with percentages and numbers",
		},
	},
	"education": {
		EnhancedContent: "Bachelor of Science in Computer Science from University of California, Berkeley. Graduated with a 3.8 GPA, consistently earning Dean's List recognition. Demonstrated leadership as President of the Programming Club and showcased technical excellence by winning the prestigious Annual Hackathon in 2019, competing against 200+ participants.",
		Suggestions: []string{
			"Highlight relevant coursework for the target role",
			"Include any research projects or publications",
			"Mention specific technologies learned during studies",
		},
	},
}

func localEnhancement(req Request) Response {
	if resp, ok := cannedEnhancements[strings.ToLower(req.Section)]; ok {
		return resp
	}
	return Response{
		EnhancedContent: "Enhanced: " + req.Content,
		Suggestions:     []string{"This content has been improved for better impact"},
	}
}
