package skills

import "fmt"

// InterviewPrep holds targeted interview questions for one missing skill.
type InterviewPrep struct {
	Skill     string   `json:"skill"`
	Questions []string `json:"questions"`
}

var questionBank = map[string][]string{
	"python": {
		"Explain the difference between a list and a tuple in Python.",
		"What are Python decorators and when would you use them?",
		"How does Python's garbage collector work?",
		"What is the GIL and how does it affect multithreading?",
		"Explain the difference between deepcopy and copy.",
	},
	"docker": {
		"What is the difference between a Docker image and a container?",
		"How would you reduce the size of a Docker image?",
		"Explain multi-stage builds and when you'd use them.",
		"What is the difference between CMD and ENTRYPOINT?",
		"How do you handle persistent data in Docker?",
	},
	"kubernetes": {
		"Explain the difference between a Deployment and a StatefulSet.",
		"How does Kubernetes service discovery work?",
		"What is the role of an Ingress controller?",
		"How would you debug a pod that keeps crashing?",
		"Explain the difference between a ConfigMap and a Secret.",
	},
	"ci/cd": {
		"What are the key stages of a CI/CD pipeline?",
		"How would you handle secrets in a CI/CD pipeline?",
		"Explain the difference between continuous delivery and continuous deployment.",
		"How do you implement rollback strategies?",
		"What testing strategies do you include in a pipeline?",
	},
	"rest apis": {
		"Explain the differences between PUT and PATCH.",
		"How do you version a REST API?",
		"What is HATEOAS and when is it useful?",
		"How do you handle pagination in a REST API?",
		"Explain idempotency and why it matters.",
	},
	"sql": {
		"What is the difference between INNER JOIN and LEFT JOIN?",
		"Explain database normalization and when to denormalize.",
		"How do indexes work and when should you use them?",
		"What is a database transaction and what are ACID properties?",
		"How would you optimize a slow query?",
	},
	"aws": {
		"Explain the difference between EC2, ECS, and Lambda.",
		"When would you use S3 vs EBS vs EFS?",
		"How does IAM role-based access control work?",
		"What is a VPC and how do you design one?",
		"Explain the shared responsibility model.",
	},
	"microservices": {
		"What are the pros and cons of microservices vs monoliths?",
		"How do you handle inter-service communication?",
		"Explain the saga pattern for distributed transactions.",
		"How do you implement service discovery?",
		"What is the circuit breaker pattern?",
	},
	"system design": {
		"How would you design a URL shortening service?",
		"Explain CAP theorem and its implications.",
		"How would you design a rate limiter?",
		"What strategies would you use for database scaling?",
		"How do you handle eventual consistency?",
	},
	"terraform": {
		"What is the difference between Terraform state and plan?",
		"How do you manage Terraform state in a team?",
		"Explain Terraform modules and when to use them.",
		"What is the difference between count and for_each?",
		"How do you handle secrets in Terraform?",
	},
	"react": {
		"Explain the React component lifecycle.",
		"What is the difference between useState and useReducer?",
		"How does React's reconciliation algorithm work?",
		"When would you use Context API vs Redux?",
		"Explain the purpose of useEffect cleanup functions.",
	},
	"typescript": {
		"What are union types and intersection types?",
		"Explain the difference between interface and type.",
		"What are generics and when would you use them?",
		"How does TypeScript's type inference work?",
		"What are utility types like Partial, Required, and Pick?",
	},
	"graphql": {
		"What are the differences between GraphQL and REST?",
		"How do you handle the N+1 query problem in GraphQL?",
		"Explain GraphQL subscriptions.",
		"What are resolvers and how do they work?",
		"How do you handle authentication in GraphQL?",
	},
	"redis": {
		"What data structures does Redis support?",
		"Explain Redis persistence options (RDB vs AOF).",
		"How would you implement a distributed lock with Redis?",
		"What are Redis pub/sub use cases?",
		"How do you handle cache invalidation?",
	},
	"kafka": {
		"Explain Kafka's architecture (brokers, topics, partitions).",
		"What is the difference between at-most-once and exactly-once delivery?",
		"How do consumer groups work?",
		"How do you choose a partition key?",
		"How do you handle consumer lag?",
	},
}

// GenerateInterviewPrep returns targeted questions for each missing skill.
// Skills outside the question bank get generic questions referencing the
// skill. Never fails; one entry per input skill.
func GenerateInterviewPrep(missingSkills []string) []InterviewPrep {
	prep := make([]InterviewPrep, 0, len(missingSkills))
	for _, skill := range missingSkills {
		questions, ok := questionBank[normalizeSkill(skill)]
		if !ok {
			questions = genericQuestions(skill)
		}
		prep = append(prep, InterviewPrep{Skill: skill, Questions: questions})
	}
	return prep
}

func genericQuestions(skill string) []string {
	return []string{
		fmt.Sprintf("Describe a project where you used %s in practice.", skill),
		fmt.Sprintf("What are the most common pitfalls when working with %s?", skill),
		fmt.Sprintf("How would you explain %s to a junior engineer?", skill),
	}
}
